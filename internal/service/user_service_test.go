package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/repository"
)

// MockUserRepo implements UserRepositoryInterface for testing
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) CountByRole(ctx context.Context, role model.Role) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

func TestSignupInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input SignupInput
		field string
	}{
		{name: "valid", input: SignupInput{Name: "Sita", Email: "sita@example.com", Password: "secret1"}},
		{name: "missing name", input: SignupInput{Email: "sita@example.com", Password: "secret1"}, field: "name"},
		{name: "bad email", input: SignupInput{Name: "Sita", Email: "not-an-email", Password: "secret1"}, field: "email"},
		{name: "short password", input: SignupInput{Name: "Sita", Email: "sita@example.com", Password: "abc"}, field: "password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.field, apperror.GetField(err))
		})
	}
}

// Table-driven tests with parallel execution
func TestUserService_Signup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     SignupInput
		mockSetup func(*MockUserRepo)
		wantErr   error
	}{
		{
			name:  "successful signup",
			input: SignupInput{Email: "ram@example.com", Password: "password123", Name: "Ram"},
			mockSetup: func(m *MockUserRepo) {
				m.On("EmailExists", mock.Anything, "ram@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "email already exists",
			input: SignupInput{Email: "taken@example.com", Password: "password123", Name: "Hari"},
			mockSetup: func(m *MockUserRepo) {
				m.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:  "lost race on insert",
			input: SignupInput{Email: "race@example.com", Password: "password123", Name: "Gita"},
			mockSetup: func(m *MockUserRepo) {
				m.On("EmailExists", mock.Anything, "race@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(repository.ErrEmailExists)
			},
			wantErr: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockRepo := new(MockUserRepo)
			tt.mockSetup(mockRepo)
			svc := NewUserService(mockRepo, testTokens)

			resp, err := svc.Signup(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, model.RoleUser, resp.User.Role)
			require.NotNil(t, resp.User.AvatarURL)
			assert.Contains(t, *resp.User.AvatarURL, "ram%40example.com")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.PasswordHash), []byte(tt.input.Password)))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Signup_InvalidInputSkipsRepository(t *testing.T) {
	t.Parallel()
	mockRepo := new(MockUserRepo)
	svc := NewUserService(mockRepo, testTokens)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "x@example.com", Password: "1", Name: "X"})

	assert.Equal(t, "password", apperror.GetField(err))
	mockRepo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correctpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	existing := &model.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: string(hash), Role: model.RoleAdmin}

	tests := []struct {
		name      string
		input     LoginInput
		mockSetup func(*MockUserRepo)
		wantErr   error
	}{
		{
			name:  "successful login",
			input: LoginInput{Email: "user@example.com", Password: "correctpassword"},
			mockSetup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
			},
		},
		{
			name:  "wrong password",
			input: LoginInput{Email: "user@example.com", Password: "wrongpassword"},
			mockSetup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "unknown email",
			input: LoginInput{Email: "nobody@example.com", Password: "password"},
			mockSetup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockRepo := new(MockUserRepo)
			tt.mockSetup(mockRepo)
			svc := NewUserService(mockRepo, testTokens)

			resp, err := svc.Login(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			claims, err := testTokens.Parse(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, existing.ID, claims.UserID)
			assert.True(t, claims.IsAdmin())
		})
	}
}

func TestUserService_Login_RepositoryError(t *testing.T) {
	t.Parallel()
	mockRepo := new(MockUserRepo)
	mockRepo.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, errors.New("db down"))
	svc := NewUserService(mockRepo, testTokens)

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "x"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Parallel()

	t.Run("seeds when no admin exists", func(t *testing.T) {
		t.Parallel()
		repo := repository.NewMemoryUserRepository()
		svc := NewUserService(repo, testTokens)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@gadgetpasal.com", "admin123"))

		user, err := repo.GetByEmail(context.Background(), "admin@gadgetpasal.com")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
		assert.Equal(t, "Admin User", user.Name)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		repo := repository.NewMemoryUserRepository()
		svc := NewUserService(repo, testTokens)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@gadgetpasal.com", "admin123"))
		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@gadgetpasal.com", "admin123"))

		count, err := repo.CountByRole(context.Background(), model.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("skipped without credentials", func(t *testing.T) {
		t.Parallel()
		mockRepo := new(MockUserRepo)
		svc := NewUserService(mockRepo, testTokens)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "", ""))
		mockRepo.AssertNotCalled(t, "CountByRole", mock.Anything, mock.Anything)
	})
}

var testTokens = NewTokenManager("test-secret")

func TestTokenManager_Parse(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	userID := uuid.New()
	valid, err := testTokens.Generate(&model.User{ID: userID, Role: model.RoleUser})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	claims, err := testTokens.Parse(valid)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.False(t, claims.IsAdmin())

	claims, err = testTokens.Parse(noRole)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, claims.Role)

	for _, bad := range []string{expired, forged, "", "not.a.jwt"} {
		_, err := testTokens.Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenManager_SecretIsolation(t *testing.T) {
	t.Parallel()

	token, err := NewTokenManager("configured-secret").Generate(&model.User{ID: uuid.New(), Role: model.RoleAdmin})
	require.NoError(t, err)

	claims, err := NewTokenManager("configured-secret").Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())

	_, err = NewTokenManager("dev-secret-change-in-production").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
