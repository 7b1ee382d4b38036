package repositories

import "userblog/internal/models"

// UserRepository defines the interface for user data access.
// Implementations assign the ID when it is empty, stamp CreatedAt and
// UpdatedAt when they are zero, and keep records in insertion order.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	Create(user *models.User) error
	Count() (int, error)
}
