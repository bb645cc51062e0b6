package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bantaydagat/bantay-dagat-api/models"
)

func testAdmin() *models.AdminUser {
	return &models.AdminUser{
		ID:     primitive.NewObjectID(),
		Email:  "admin@bantaydagat.ph",
		Active: true,
		Roles:  []string{"admin"},
	}
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	admin := testAdmin()
	token, err := GenerateAdminToken(admin, "test-secret", time.Now())
	require.NoError(t, err)

	claims, err := ValidateAdminToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, admin.Email, claims.Email)
	assert.Equal(t, admin.ID.Hex(), claims.Subject)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestValidateAdminTokenWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken(testAdmin(), "test-secret", time.Now())
	require.NoError(t, err)

	_, err = ValidateAdminToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateAdminTokenExpired(t *testing.T) {
	token, err := GenerateAdminToken(testAdmin(), "test-secret", time.Now().Add(-2*AdminTokenExpiry))
	require.NoError(t, err)

	_, err = ValidateAdminToken(token, "test-secret")
	assert.Error(t, err)
}

func TestGenerateAdminTokenNoSecret(t *testing.T) {
	_, err := GenerateAdminToken(testAdmin(), "", time.Now())
	assert.Error(t, err)
}

func TestAdminMiddleware(t *testing.T) {
	token, err := GenerateAdminToken(testAdmin(), "test-secret", time.Now())
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := AdminMiddleware("test-secret")(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer asdfasdf", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
