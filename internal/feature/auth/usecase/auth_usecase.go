package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"finance_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns an error when a user with the
	// same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user matching the given email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user matching the given ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns a JWT token on success.
// The bcrypt comparison always runs, even when the user does not exist,
// to keep response timing independent of account existence.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", errors.New("invalid email or password")
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
