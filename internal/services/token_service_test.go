package services

import (
	"testing"
	"time"

	"walletwise/internal/config"
	"walletwise/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceSuite defines the test suite for TokenServiceInterface
type TokenServiceSuite struct {
	suite.Suite
	cfg     *config.JWTConfig
	service TokenServiceInterface
}

// SetupTest runs before each test in the suite
func (s *TokenServiceSuite) SetupTest() {
	s.cfg = &config.JWTConfig{
		Secret:              "test-secret-key-for-token-tests",
		Issuer:              "walletwise-test",
		AccessTokenDuration: 15 * time.Minute,
	}
	s.service = NewTokenService(s.cfg)
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceSuite))
}

func (s *TokenServiceSuite) TestGenerateAndValidateToken_UserActor() {
	userID := uuid.New()
	actor := models.Actor{UserID: &userID, Role: models.RoleMember}

	token, err := s.service.GenerateToken(actor, userID.String())
	s.Require().NoError(err)
	s.NotEmpty(token)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(userID.String(), claims.UserID)
	s.Empty(claims.FamilyID)
	s.Equal(models.RoleMember, claims.Role)
	s.Equal("walletwise-test", claims.Issuer)

	roundTripped, err := claims.Actor()
	s.Require().NoError(err)
	s.Require().NotNil(roundTripped.UserID)
	s.Equal(userID, *roundTripped.UserID)
	s.Nil(roundTripped.FamilyID)
}

func (s *TokenServiceSuite) TestGenerateAndValidateToken_FamilyActor() {
	familyID := uuid.New()
	actor := models.Actor{FamilyID: &familyID, Role: models.RoleMember}

	token, err := s.service.GenerateToken(actor, familyID.String())
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Empty(claims.UserID)
	s.Equal(familyID.String(), claims.FamilyID)
}

func (s *TokenServiceSuite) TestValidateToken_Expired() {
	s.cfg.AccessTokenDuration = -time.Minute
	userID := uuid.New()

	token, err := s.service.GenerateToken(models.Actor{UserID: &userID, Role: models.RoleMember}, userID.String())
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceSuite) TestValidateToken_WrongSecret() {
	userID := uuid.New()
	token, err := s.service.GenerateToken(models.Actor{UserID: &userID, Role: models.RoleMember}, userID.String())
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		Secret:              "a-different-secret",
		Issuer:              "walletwise-test",
		AccessTokenDuration: 15 * time.Minute,
	})

	claims, err := other.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceSuite) TestValidateToken_Garbage() {
	claims, err := s.service.ValidateToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	// Scheme comparison is case-insensitive
	token, err = s.service.ExtractTokenFromHeader("bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	_, err = s.service.ExtractTokenFromHeader("")
	s.ErrorIs(err, ErrInvalidToken)

	_, err = s.service.ExtractTokenFromHeader("Basic abc")
	s.ErrorIs(err, ErrInvalidToken)

	_, err = s.service.ExtractTokenFromHeader("Bearer ")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestActorClaims_InvalidUserID() {
	claims := &ActorClaims{UserID: "not-a-uuid", Role: models.RoleMember}

	_, err := claims.Actor()
	s.Error(err)
}
