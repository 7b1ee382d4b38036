package repositories_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userblog/internal/models"
	"userblog/internal/repositories"
)

func fixedClock(t time.Time) repositories.Clock {
	return func() time.Time { return t }
}

func TestMemoryUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	repo := repositories.NewMemoryUserRepository(fixedClock(now))
	require.NoError(t, repositories.SeedUsers(repo))

	user := &models.User{Username: "johnny", Password: "secret1", Email: "a@b.com"}
	require.NoError(t, repo.Create(user))

	assert.Equal(t, "3", user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{users[0].ID, users[1].ID, users[2].ID})
}

func TestMemoryUserRepository_SeedKeepsTimestamps(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(nil)
	require.NoError(t, repositories.SeedUsers(repo))

	user, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", user.CreatedAt.Format(time.RFC3339))
	assert.Equal(t, "2025-06-02T00:00:00Z", user.UpdatedAt.Format(time.RFC3339))
}

func TestMemoryUserRepository_ExplicitIDAdvancesSequence(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(nil)

	require.NoError(t, repo.Create(&models.User{ID: "10", Username: "explicit"}))
	next := &models.User{Username: "generated"}
	require.NoError(t, repo.Create(next))

	assert.Equal(t, "11", next.ID)
}

func TestMemoryUserRepository_DuplicateIDRejected(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(nil)
	require.NoError(t, repositories.SeedUsers(repo))

	err := repo.Create(&models.User{ID: "1", Username: "imposter"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateID)

	n, _ := repo.Count()
	assert.Equal(t, 2, n)
}

func TestMemoryUserRepository_GetByIDNotFound(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(nil)

	user, err := repo.GetByID("404")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(nil)
	require.NoError(t, repositories.SeedUsers(repo))

	users, _ := repo.GetAll()
	users[0].Username = "mallory"
	users[0].Roles[0] = "root"

	stored, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", stored.Username)
	assert.Equal(t, []string{"user"}, stored.Roles)
}

func TestMemoryUserRepository_ConcurrentCreate(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(nil)

	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(&models.User{Username: fmt.Sprintf("user%d", i)}))
		}(i)
	}
	wg.Wait()

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, workers)

	seen := make(map[string]bool, workers)
	for _, u := range users {
		assert.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
	}
}

func TestMemoryPostRepository_CreateAndList(t *testing.T) {
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	repo := repositories.NewMemoryPostRepository(fixedClock(now))
	require.NoError(t, repositories.SeedPosts(repo))

	post := &models.BlogPost{Title: "Hello World", Content: "0123456789", AuthorID: "1", Tags: []string{"b", "a"}}
	require.NoError(t, repo.Create(post))

	assert.Equal(t, "2", post.ID)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)

	posts, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Welcome to the Blog!", posts[0].Title)
	assert.Equal(t, []string{"b", "a"}, posts[1].Tags)

	_, err = repo.GetByID("3")
	assert.ErrorIs(t, err, repositories.ErrPostNotFound)
}

func TestMemoryPostRepository_DuplicateIDRejected(t *testing.T) {
	repo := repositories.NewMemoryPostRepository(nil)
	require.NoError(t, repositories.SeedPosts(repo))

	err := repositories.SeedPosts(repo)
	assert.ErrorIs(t, err, repositories.ErrDuplicateID)
}
