// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"finance_backend/internal/feature/auth/domain/entity"
	"finance_backend/internal/feature/auth/usecase"
)

// userMySQL is the MySQL implementation of the UserRepository interface.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check that userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a userMySQL backed by the given gorm.DB connection.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create adds a user to the database. It returns
// usecase.ErrEmailAlreadyExists when the email is already registered.
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQL error 1062: duplicate entry on a unique key
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail fetches a user by email address. It returns
// usecase.ErrUserNotFound when no such user exists.
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID fetches a user by ID. It returns usecase.ErrUserNotFound when no
// such user exists.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
