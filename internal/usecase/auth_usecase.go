package usecase

import (
	"context"
	"errors"

	"sehat-clinic/internal/converter"
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/repository"
	"sehat-clinic/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout revokes the access token and, when given and owned by the same patient, the refresh token.
	Logout(ctx context.Context, patientID int, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, patient.ID, patient.Email)
}

func (u *authUsecase) Logout(ctx context.Context, patientID int, accessTokenID, refreshToken string) error {
	keys := []string{jwt.AccessTokenKey(patientID, accessTokenID)}

	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.PatientID == patientID {
			keys = append(keys, jwt.RefreshTokenKey(patientID, claims.TokenID))
		}
	}

	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens from Redis: %+v", err)
		return err
	}
	return nil
}

// RefreshToken rotates a whitelisted refresh token into a new token pair.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Del reports how many keys it removed, so a replayed token loses the race.
	removed, err := u.redisClient.Del(ctx, jwt.RefreshTokenKey(claims.PatientID, claims.TokenID)).Result()
	if err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}
	if removed == 0 {
		return nil, ErrTokenRevoked
	}

	return u.issueTokens(ctx, claims.PatientID, claims.Email)
}

func (u *authUsecase) GetCurrentPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, patientID int, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(patientID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(patientID, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	pipe := u.redisClient.TxPipeline()
	pipe.Set(ctx, jwt.AccessTokenKey(patientID, accessTokenID), "valid", u.jwtService.GetAccessExpiry())
	pipe.Set(ctx, jwt.RefreshTokenKey(patientID, refreshTokenID), "valid", u.jwtService.GetRefreshExpiry())
	if _, err := pipe.Exec(ctx); err != nil {
		u.log.Warnf("Failed to store tokens in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
