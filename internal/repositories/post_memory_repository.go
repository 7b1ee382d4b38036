package repositories

import (
	"fmt"
	"sync"

	"userblog/internal/models"
)

// MemoryPostRepository is an in-memory, append-only implementation of
// PostRepository.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.BlogPost
	index map[string]int
	seq   sequence
	now   Clock
}

// NewMemoryPostRepository creates an empty MemoryPostRepository.
func NewMemoryPostRepository(now Clock) *MemoryPostRepository {
	if now == nil {
		now = UTCMillis
	}
	return &MemoryPostRepository{
		posts: make([]models.BlogPost, 0, 16),
		index: make(map[string]int),
		now:   now,
	}
}

// GetAll returns all posts in insertion order.
func (r *MemoryPostRepository) GetAll() ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	postList := make([]models.BlogPost, len(r.posts))
	for i, p := range r.posts {
		postList[i] = clonePost(p)
	}
	return postList, nil
}

// GetByID returns a post by its ID.
func (r *MemoryPostRepository) GetByID(id string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("blog post with ID %s: %w", id, ErrPostNotFound)
	}
	post := clonePost(r.posts[pos])
	return &post, nil
}

// Create appends a post.
func (r *MemoryPostRepository) Create(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = r.seq.next()
	} else {
		if _, taken := r.index[post.ID]; taken {
			return fmt.Errorf("blog post with ID %s: %w", post.ID, ErrDuplicateID)
		}
		r.seq.observe(post.ID)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = r.now()
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}
	post.Seq = uint(len(r.posts) + 1)

	r.index[post.ID] = len(r.posts)
	r.posts = append(r.posts, clonePost(*post))
	return nil
}

// Count returns the number of stored posts.
func (r *MemoryPostRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}

func clonePost(p models.BlogPost) models.BlogPost {
	p.Tags = cloneStrings(p.Tags)
	return p
}
