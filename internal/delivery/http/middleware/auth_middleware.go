package middleware

import (
	"context"
	"net/http"
	"strings"

	"sehat-clinic/pkg/jwt"
	"sehat-clinic/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	PatientIDKey contextKey = "patient_id"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Logout and rotation remove the key, so a missing key means revoked.
		exists, err := m.redisClient.Exists(r.Context(), jwt.AccessTokenKey(claims.PatientID, claims.TokenID)).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), PatientIDKey, claims.PatientID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPatientIDFromContext extracts the authenticated patient ID from context
func GetPatientIDFromContext(ctx context.Context) (int, bool) {
	patientID, ok := ctx.Value(PatientIDKey).(int)
	return patientID, ok && patientID > 0
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// WithPatientID returns a copy of ctx carrying an authenticated patient, as Authenticate would set it.
func WithPatientID(ctx context.Context, patientID int, tokenID string) context.Context {
	ctx = context.WithValue(ctx, PatientIDKey, patientID)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}
