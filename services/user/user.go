// File: services/user/user.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "placehub/database/repository/user"
	"placehub/models"
	"placehub/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned on login with a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when no account matches the given id.
	ErrUserNotFound = errors.New("user not found")
)

const tokenDuration = 72 * time.Hour

// UserService defines account management operations.
type UserService interface {
	Register(ctx context.Context, user *models.User) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// NewDefaultUserService constructs a DefaultUserService.
func NewDefaultUserService(repo userRepo.UserRepository, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Logger: logger}
}

// Register creates a new account and returns it with a signed token.
func (s *DefaultUserService) Register(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return nil, errors.New("name, email and password are required")
	}

	existing, err := s.Repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	s.Logger.Info("user registered", zap.String("userID", user.ID), zap.String("role", user.Role))

	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// Login checks credentials and returns the account with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// GetProfile fetches a single account by id.
func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all accounts.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateProfile replaces the mutable fields of an account. Email, role and
// password hash are preserved from the stored record.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	current, err := s.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.Email = current.Email
	user.Role = current.Role
	user.PasswordHash = current.PasswordHash
	user.CreatedAt = current.CreatedAt
	if user.Name == "" {
		user.Name = current.Name
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrUserNotFound
	}
	return err
}
