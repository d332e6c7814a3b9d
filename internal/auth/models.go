package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role" validate:"omitempty,oneof=admin volunteer coordinator donor"`
	Password string `json:"password" validate:"required"`
}

// Credential is the OAuth2 password form; Username carries the email.
// Email is accepted as an alias for JSON clients.
type Credential struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (c Credential) Identifier() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Email
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
