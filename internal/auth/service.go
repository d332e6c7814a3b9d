package auth

import (
	"context"
	"errors"
	"fmt"

	"ImpactFlow/internal/config"
	"ImpactFlow/internal/models"
	"ImpactFlow/internal/store"
	"ImpactFlow/pkg/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence the identity flow needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
}

type UserService struct {
	repo      UserStore
	tokens    *TokenManager
	validator *validation.Validator
	cost      int
	// dummyHash is compared against when the email is unknown so both
	// login failures cost the same.
	dummyHash string
	log       *zap.Logger
}

func NewUserService(repo UserStore, tokens *TokenManager, v *validation.Validator, cfg *config.JWTConfig, logger *zap.Logger) (*UserService, error) {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, err := HashPassword("impactflow-timing-equalizer", cost)
	if err != nil {
		return nil, fmt.Errorf("prepare password hasher: %w", err)
	}
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		validator: v,
		cost:      cost,
		dummyHash: dummy,
		log:       logger.Named("auth"),
	}, nil
}

// HashPassword hashes with the configured cost.
func (s *UserService) HashPassword(password string) (string, error) {
	return HashPassword(password, s.cost)
}

// RegisterUser creates an active account and returns its identifier. It does
// not log the caller in.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterRequest) (string, error) {
	if err := s.validator.Validate(&req); err != nil {
		return "", err
	}

	existingUser, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if existingUser != nil {
		return "", ErrDuplicateIdentity
	}

	hashPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Password: hashPassword,
	}
	user.ApplyDefaults()

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return "", ErrDuplicateIdentity
		}
		return "", err
	}
	s.log.Info("user registered", zap.String("user_id", id), zap.String("role", user.Role))
	return id, nil
}

// AuthenticateUser exchanges valid credentials for a signed access token.
// Unknown email and wrong password produce the same error.
func (s *UserService) AuthenticateUser(ctx context.Context, cred Credential) (*TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, cred.Identifier())
	if err != nil {
		return nil, err
	}
	if user == nil {
		CheckPasswordHash(cred.Password, s.dummyHash)
		return nil, ErrInvalidCredentials
	}
	if !CheckPasswordHash(cred.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.Active() {
		return nil, ErrInactiveAccount
	}

	token, err := s.tokens.GenerateJWT(user.ID.Hex(), user.EffectiveRole())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser resolves a bearer token to its user, without the password digest.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ValidateJWT(token)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Debug("token subject not found", zap.String("user_id", claims.Subject))
		return nil, ErrInvalidToken
	}
	user.Sanitize()
	return user, nil
}
