package jwt

import (
	"errors"
	"fmt"
	"time"

	"sehat-clinic/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	PatientID int       `json:"patient_id"`
	Email     string    `json:"email"`
	TokenType TokenType `json:"token_type"`
	TokenID   string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken returns the signed token and its token ID.
func (s *JWTService) GenerateAccessToken(patientID int, email string) (string, string, error) {
	return s.generate(patientID, email, AccessToken, s.config.AccessExpiry)
}

// GenerateRefreshToken returns the signed token and its token ID.
func (s *JWTService) GenerateRefreshToken(patientID int, email string) (string, string, error) {
	return s.generate(patientID, email, RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) generate(patientID int, email string, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		PatientID: patientID,
		Email:     email,
		TokenType: tokenType,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}

// AccessTokenKey is the redis key whitelisting an issued access token.
func AccessTokenKey(patientID int, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", patientID, tokenID)
}

// RefreshTokenKey is the redis key whitelisting an issued refresh token.
func RefreshTokenKey(patientID int, tokenID string) string {
	return fmt.Sprintf("refresh_token:%d:%s", patientID, tokenID)
}
