package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/logger"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/repository"
)

// Service-level errors for authentication and user management.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidToken       = errors.New("invalid token")
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// TokenTTL is how long an access token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// UserRepositoryInterface defines the contract for user data access.
// Implementations must be safe for concurrent use.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role model.Role) (int, error)
}

// UserService handles signup, login and account lookup.
type UserService struct {
	repo   UserRepositoryInterface
	tokens *TokenManager
}

// NewUserService creates a new UserService that issues tokens through tokens.
func NewUserService(repo UserRepositoryInterface, tokens *TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Validate checks required fields, email syntax and password length.
func (in SignupInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperror.ValidationError("name", "name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperror.ValidationError("email", "a valid email is required")
	}
	if len(in.Password) < MinPasswordLength {
		return apperror.ValidationError("password", fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// Signup creates a customer account and returns a token for it.
// Returns ErrEmailTaken if the email is already registered.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*AuthResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user, err := s.createUser(ctx, input, model.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user with email and password.
// Returns ErrInvalidCredentials if the credentials are incorrect.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// GetByID retrieves a user by their ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return user, nil
}

// EnsureAdmin creates the admin account when no admin exists yet.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.repo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	user, err := s.createUser(ctx, SignupInput{Email: email, Password: password, Name: "Admin User"}, model.RoleAdmin)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("seeded admin account", "email", user.Email)
	return nil
}

func (s *UserService) createUser(ctx context.Context, input SignupInput, role model.Role) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	avatar := "https://i.pravatar.cc/150?u=" + url.QueryEscape(strings.ToLower(strings.TrimSpace(input.Email)))
	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Role:         role,
		AvatarURL:    &avatar,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// TokenClaims is what a validated token says about its holder.
type TokenClaims struct {
	UserID uuid.UUID
	Role   model.Role
}

func (c TokenClaims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

// TokenManager signs and verifies access tokens with one HMAC secret.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager for the configured JWT secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate creates a signed JWT carrying the user ID and role.
func (m *TokenManager) Generate(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"exp":  now.Add(TokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a JWT and returns its claims.
// Tokens without a role claim are treated as customer tokens.
func (m *TokenManager) Parse(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role := model.RoleUser
	if r, _ := claims["role"].(string); r == string(model.RoleAdmin) {
		role = model.RoleAdmin
	}

	return &TokenClaims{UserID: userID, Role: role}, nil
}
