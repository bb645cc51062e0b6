package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/models"
)

const (
	// AdminTokenExpiry is the lifetime of an admin access token
	AdminTokenExpiry = 24 * time.Hour
	adminScope       = "admin"
)

// ErrInvalidToken is returned for a token that fails signature, expiry or scope checks
var ErrInvalidToken = errors.New("invalid token")

// AdminClaims are the claims carried by an admin access token
type AdminClaims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	Scope string   `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateAdminToken signs an HS256 access token for the admin
func GenerateAdminToken(admin *models.AdminUser, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}
	claims := AdminClaims{
		Email: admin.Email,
		Roles: admin.Roles,
		Scope: adminScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminTokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAdminToken parses the token and checks it carries the admin scope
func ValidateAdminToken(tokenString, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Scope != adminScope {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AdminMiddleware only lets through requests with a valid admin bearer token
func AdminMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if secret == "" || !strings.HasPrefix(header, "Bearer ") {
				writeUnauthorized(w)
				return
			}
			claims, err := ValidateAdminToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				zap.S().Warnw("admin token rejected", "url", r.URL.Path, "error", err)
				writeUnauthorized(w)
				return
			}
			zap.S().Debugw("admin authenticated", "email", claims.Email)
			next.ServeHTTP(w, r)
		})
	}
}
