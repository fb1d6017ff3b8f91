package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"walletwise/internal/config"
	"walletwise/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// ActorClaims carries the authorization descriptor inside a JWT: an
// optional user scope, an optional family scope, and a role.
type ActorClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id,omitempty"`
	FamilyID string `json:"family_id,omitempty"`
	Role     string `json:"role"`
}

// Actor converts the claims back into the domain descriptor.
func (c *ActorClaims) Actor() (models.Actor, error) {
	actor := models.Actor{Role: c.Role}

	if c.UserID != "" {
		userID, err := uuid.Parse(c.UserID)
		if err != nil {
			return models.Actor{}, fmt.Errorf("invalid user ID in token: %w", err)
		}
		actor.UserID = &userID
	}

	if c.FamilyID != "" {
		familyID, err := uuid.Parse(c.FamilyID)
		if err != nil {
			return models.Actor{}, fmt.Errorf("invalid family ID in token: %w", err)
		}
		actor.FamilyID = &familyID
	}

	return actor, nil
}

// tokenService issues and validates HMAC-signed actor tokens
type tokenService struct {
	cfg *config.JWTConfig
}

// NewTokenService creates the token service
func NewTokenService(cfg *config.JWTConfig) TokenServiceInterface {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) GenerateToken(actor models.Actor, subject string) (string, error) {
	now := time.Now()

	claims := &ActorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
		},
		Role: actor.Role,
	}

	if actor.UserID != nil {
		claims.UserID = actor.UserID.String()
	}
	if actor.FamilyID != nil {
		claims.FamilyID = actor.FamilyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *tokenService) ValidateToken(tokenString string) (*ActorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ActorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *tokenService) ExtractTokenFromHeader(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrInvalidToken
	}

	return token, nil
}
