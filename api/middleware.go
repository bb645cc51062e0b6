package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

// tokenTTL bounds how long a responder bearer token stays in the cache
const tokenTTL = 12 * time.Hour

// MiddlewareDB is a struct that holds the responder database
type MiddlewareDB struct {
	DB databases.ResponderDatabase
}

var authenticator auth.Authenticator
var cache store.Cache
var responders databases.ResponderDatabase

// errDeactivated is returned when a cached login belongs to a deactivated responder
var errDeactivated = errors.New("responder is deactivated")

// Middleware rejects requests without valid responder credentials, either
// basic auth or a bearer token issued by CreateToken. Cached logins are
// re-checked against the directory so deactivation applies immediately.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticator.Authenticate(r)
		if err == nil {
			err = checkActive(r.Context(), user)
		}
		if err != nil {
			zap.S().Warnw("unauthorized",
				"url", r.URL.Path,
				"error", err)
			writeUnauthorized(w)
			return
		}
		zap.S().Debugw("responder authenticated", "email", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// CreateToken returns a bearer token for a responder who authenticated with basic auth
func (m MiddlewareDB) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email, _, ok := r.BasicAuth()
	if !ok {
		writeUnauthorized(w)
		return
	}

	responder, err := m.DB.FindOne(r.Context(), bson.M{"email": normalizeEmail(email)})
	if err != nil {
		writeUnauthorized(w)
		return
	}

	token := uuid.New().String()
	info := auth.NewDefaultUser(responder.Email, responder.ID.Hex(), []string{responder.ResponderType}, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Append(tokenStrategy, token, info, r); err != nil {
		zap.S().Errorw("failed to cache token", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "failed to create token"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"token":         token,
		"_id":           responder.ID.Hex(),
		"responderType": responder.ResponderType,
	})
}

// SetupGoGuardian sets up the go-guardian middleware
func (m MiddlewareDB) SetupGoGuardian() {
	authenticator = auth.New()
	responders = m.DB
	cache = store.NewFIFO(context.Background(), tokenTTL)
	basicStrategy := basic.New(m.ValidateUser, cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)

	authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// ValidateUser checks basic auth credentials against the responder directory.
// Deactivated responders are refused.
func (m MiddlewareDB) ValidateUser(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	responder, err := m.DB.FindOne(ctx, bson.M{"email": normalizeEmail(email)})
	if errors.Is(err, databases.ErrNotFound) {
		return nil, fmt.Errorf("no matching email found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get responder: %w", err)
	}
	if !responder.Active {
		return nil, errDeactivated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(responder.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return auth.NewDefaultUser(responder.Email, responder.ID.Hex(), []string{responder.ResponderType}, nil), nil
}

// RevokeToken revokes a token
func RevokeToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reqToken := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if reqToken == "" {
		writeUnauthorized(w)
		return
	}

	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Revoke(tokenStrategy, reqToken, r); err != nil {
		zap.S().Errorw("failed to revoke token", "error", err)
	}
	_ = json.NewEncoder(w).Encode(models.MessageResponse{Success: true, Message: "token revoked"})
}

func checkActive(ctx context.Context, user auth.Info) error {
	id, err := primitive.ObjectIDFromHex(user.ID())
	if err != nil {
		return fmt.Errorf("invalid responder id %q: %w", user.ID(), err)
	}
	responder, err := responders.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to get responder: %w", err)
	}
	if !responder.Active {
		return errDeactivated
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "unauthorized"})
}
