package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// CreateUser creates a new back-office user
func (r *PostgresRepository) CreateUser(req model.CreateUserRequest) (*model.User, error) {
	var existing model.User
	err := r.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, repository.ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Role:         req.Role,
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
