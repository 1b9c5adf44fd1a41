package services

import (
	"errors"
	"fmt"
	"time"
	"trip_map_system/configs"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/db/repositories"

	"github.com/go-pg/pg/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is returned by sign-up, sign-in and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

type authService struct {
	profileRepository repositories.ProfileRepository
	config            configs.Auth
	logger            *zap.SugaredLogger
}

type AuthService interface {
	SignUp(email, password, displayName string) (*models.Profile, *TokenPair, error)
	SignIn(email, password string) (*models.Profile, *TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	VerifyAccessToken(token string) (uuid.UUID, error)
	UpdateDisplayName(userID uuid.UUID, displayName string) (*models.Profile, error)
}

func NewAuthService(
	profileRepository repositories.ProfileRepository,
	config configs.Auth,
	logger *zap.SugaredLogger,
) AuthService {
	return &authService{
		profileRepository: profileRepository,
		config:            config,
		logger:            logger,
	}
}

func (s *authService) SignUp(email, password, displayName string) (*models.Profile, *TokenPair, error) {
	_, err := s.profileRepository.GetOneByEmail(email)
	if err == nil {
		return nil, nil, ErrEmailTaken
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := s.profileRepository.Create(&models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	})
	if err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}

	return profile, tokens, nil
}

func (s *authService) SignIn(email, password string) (*models.Profile, *TokenPair, error) {
	profile, err := s.profileRepository.GetOneByEmail(email)
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}

	return profile, tokens, nil
}

func (s *authService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profileRepository.GetOne(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(profile)
}

func (s *authService) VerifyAccessToken(token string) (uuid.UUID, error) {
	claims, err := s.parseToken(token, "access")
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}

	return userID, nil
}

func (s *authService) UpdateDisplayName(userID uuid.UUID, displayName string) (*models.Profile, error) {
	profile, err := s.profileRepository.GetOne(userID)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = displayName
	profile.UpdatedAt = time.Now()

	return s.profileRepository.Update(profile)
}

func (s *authService) issueTokens(profile *models.Profile) (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(time.Duration(s.config.AccessTokenMinutes) * time.Minute)
	refreshExpiry := now.Add(time.Duration(s.config.RefreshTokenHours) * time.Hour)

	accessToken, err := s.signToken(profile, "access", now, accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(profile, "refresh", now, refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpiry.Unix(),
	}, nil
}

func (s *authService) signToken(profile *models.Profile, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := &TokenClaims{
		UserID: profile.ID.String(),
		Email:  profile.Email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return token, nil
}

func (s *authService) parseToken(tokenString, expectedType string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.Type != expectedType {
		return nil, ErrInvalidCredentials
	}

	return claims, nil
}
