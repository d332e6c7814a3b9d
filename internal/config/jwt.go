package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is only acceptable for local development.
const DefaultJWTSecret = "dev-secret-change-me"

const AccessTokenTTL = 24 * time.Hour

type JWTConfig struct {
	Secret     []byte
	Algorithm  string
	TTL        time.Duration
	BcryptCost int
}

func NewJWTConfig(logger *zap.Logger) (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:     []byte(os.Getenv("JWT_SECRET")),
		Algorithm:  strings.ToUpper(strings.TrimSpace(os.Getenv("JWT_ALGORITHM"))),
		TTL:        AccessTokenTTL,
		BcryptCost: bcrypt.DefaultCost,
	}
	if len(cfg.Secret) == 0 {
		logger.Warn("JWT_SECRET not set, using the development default")
		cfg.Secret = []byte(DefaultJWTSecret)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = jwt.SigningMethodHS256.Alg()
	}
	if _, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q: want HS256, HS384 or HS512", cfg.Algorithm)
	}
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", raw)
		}
		cfg.BcryptCost = cost
	}
	return cfg, nil
}
