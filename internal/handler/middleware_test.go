package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/service"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := service.NewTokenManager("test-secret")

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "invalid authorization format - no bearer",
			authHeader: "invalid-token",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "invalid authorization format - wrong prefix",
			authHeader: "Basic invalid-token",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-jwt-token",
			wantCode:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tokens)(next)
			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenManager("test-secret")

	userID := uuid.New()
	token, err := tokens.Generate(&model.User{ID: userID, Role: model.RoleAdmin})
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotRole model.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
		gotRole = GetRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(tokens)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, model.RoleAdmin, gotRole)
}

func TestAuthMiddleware_TokenFromOtherSecret(t *testing.T) {
	token, err := service.NewTokenManager("first-secret").Generate(&model.User{ID: uuid.New(), Role: model.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(service.NewTokenManager("rotated-secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name     string
		userID   uuid.UUID
		role     model.Role
		wantCode int
	}{
		{name: "admin passes", userID: uuid.New(), role: model.RoleAdmin, wantCode: http.StatusOK},
		{name: "customer is forbidden", userID: uuid.New(), role: model.RoleUser, wantCode: http.StatusForbidden},
		{name: "anonymous is unauthorized", userID: uuid.Nil, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
			ctx := req.Context()
			if tt.userID != uuid.Nil {
				ctx = context.WithValue(ctx, UserIDKey, tt.userID)
				ctx = context.WithValue(ctx, RoleKey, tt.role)
			}
			w := httptest.NewRecorder()

			AdminOnly(next).ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), UserIDKey, userID)
	assert.Equal(t, userID, GetUserID(ctx))
}

func TestGetUserID_NotSet(t *testing.T) {
	assert.Equal(t, uuid.Nil, GetUserID(context.Background()))
}

func TestGetUserID_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, "not-a-uuid")
	assert.Equal(t, uuid.Nil, GetUserID(ctx))
}

func TestGetRole_DefaultsToUser(t *testing.T) {
	assert.Equal(t, model.RoleUser, GetRole(context.Background()))
}
