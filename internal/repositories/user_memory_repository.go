package repositories

import (
	"fmt"
	"sync"

	"userblog/internal/models"
)

// MemoryUserRepository is an in-memory, append-only implementation of
// UserRepository.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
	index map[string]int
	seq   sequence
	now   Clock
}

// NewMemoryUserRepository creates an empty MemoryUserRepository.
func NewMemoryUserRepository(now Clock) *MemoryUserRepository {
	if now == nil {
		now = UTCMillis
	}
	return &MemoryUserRepository{
		users: make([]models.User, 0, 16),
		index: make(map[string]int),
		now:   now,
	}
}

// GetAll returns all users in insertion order.
func (r *MemoryUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, len(r.users))
	for i, u := range r.users {
		userList[i] = cloneUser(u)
	}
	return userList, nil
}

// GetByID returns a user by its ID.
func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrUserNotFound)
	}
	user := cloneUser(r.users[pos])
	return &user, nil
}

// Create appends a user. The ID, timestamps and append happen under one lock.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = r.seq.next()
	} else {
		if _, taken := r.index[user.ID]; taken {
			return fmt.Errorf("user with ID %s: %w", user.ID, ErrDuplicateID)
		}
		r.seq.observe(user.ID)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.now()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}
	user.Seq = uint(len(r.users) + 1)

	r.index[user.ID] = len(r.users)
	r.users = append(r.users, cloneUser(*user))
	return nil
}

// Count returns the number of stored users.
func (r *MemoryUserRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func cloneUser(u models.User) models.User {
	u.Roles = cloneStrings(u.Roles)
	return u
}
