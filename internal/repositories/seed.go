package repositories

import (
	"fmt"
	"time"

	"userblog/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedUserRecords returns the users every fresh store starts with.
func SeedUserRecords() []models.User {
	return []models.User{
		{
			ID:              "1",
			Username:        "johndoe",
			Password:        "********",
			Email:           "john@example.com",
			DisplayName:     "John Doe",
			ProfileImageURL: "https://randomuser.me/api/portraits/men/1.jpg",
			Roles:           []string{"user"},
			CreatedAt:       mustTime("2024-01-01T00:00:00Z"),
			UpdatedAt:       mustTime("2025-06-02T00:00:00Z"),
		},
		{
			ID:              "2",
			Username:        "janedoe",
			Password:        "********",
			Email:           "jane@example.com",
			DisplayName:     "Jane Doe",
			ProfileImageURL: "https://randomuser.me/api/portraits/women/2.jpg",
			Roles:           []string{"admin"},
			CreatedAt:       mustTime("2024-02-01T00:00:00Z"),
			UpdatedAt:       mustTime("2025-06-02T00:00:00Z"),
		},
	}
}

// SeedPostRecords returns the blog posts every fresh store starts with.
func SeedPostRecords() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:        "1",
			Title:     "Welcome to the Blog!",
			Content:   "This is the first post. Edit or add more posts to get started.",
			AuthorID:  "1",
			Tags:      []string{"welcome", "intro"},
			CreatedAt: mustTime("2025-06-02T00:00:00Z"),
			UpdatedAt: mustTime("2025-06-02T00:00:00Z"),
		},
	}
}

// SeedUsers populates repo with SeedUserRecords.
func SeedUsers(repo UserRepository) error {
	users := SeedUserRecords()
	for i := range users {
		if err := repo.Create(&users[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].Username, err)
		}
	}
	return nil
}

// SeedPosts populates repo with SeedPostRecords.
func SeedPosts(repo PostRepository) error {
	posts := SeedPostRecords()
	for i := range posts {
		if err := repo.Create(&posts[i]); err != nil {
			return fmt.Errorf("failed to seed blog post %q: %w", posts[i].Title, err)
		}
	}
	return nil
}
