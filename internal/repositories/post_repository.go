package repositories

import "userblog/internal/models"

// PostRepository defines the interface for blog post data access.
// It follows the same ID and timestamp rules as UserRepository.
type PostRepository interface {
	GetAll() ([]models.BlogPost, error)
	GetByID(id string) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
	Count() (int, error)
}
