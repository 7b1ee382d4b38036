package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"userblog/internal/models"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db  *gorm.DB
	now Clock
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB, now Clock) *GORMPostRepository {
	if now == nil {
		now = UTCMillis
	}
	return &GORMPostRepository{
		db:  db,
		now: now,
	}
}

// GetAll retrieves all blog posts in insertion order.
func (r *GORMPostRepository) GetAll() ([]models.BlogPost, error) {
	posts := make([]models.BlogPost, 0)
	if err := r.db.Order("seq asc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all blog posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a single blog post by its ID from the database.
func (r *GORMPostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post with ID %s: %w", id, ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to get blog post by ID %s: %w", id, err)
	}
	return &post, nil
}

// Create inserts a new blog post.
func (r *GORMPostRepository) Create(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = r.now()
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}
	post.Seq = 0

	if err := r.db.Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("blog post with ID %s: %w", post.ID, ErrDuplicateID)
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Count returns the number of stored blog posts.
func (r *GORMPostRepository) Count() (int, error) {
	var n int64
	if err := r.db.Model(&models.BlogPost{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return int(n), nil
}
