package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userblog/internal/models"
)

func TestUser_MarshalJSON(t *testing.T) {
	user := models.User{
		Seq:       4,
		ID:        "3",
		Username:  "johnny",
		Password:  "secret1",
		Email:     "a@b.com",
		CreatedAt: time.Date(2025, 6, 2, 10, 0, 0, 120*int(time.Millisecond), time.UTC),
		UpdatedAt: time.Date(2025, 6, 2, 10, 0, 0, 120*int(time.Millisecond), time.UTC),
	}

	body, err := json.Marshal(user)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "2025-06-02T10:00:00.120Z", got["createdAt"])
	assert.Equal(t, "2025-06-02T10:00:00.120Z", got["updatedAt"])
	assert.Equal(t, []any{}, got["roles"])
	assert.Equal(t, "secret1", got["password"])
	assert.NotContains(t, got, "Seq")
	assert.NotContains(t, got, "displayName")
}

func TestBlogPost_MarshalJSON(t *testing.T) {
	post := models.BlogPost{
		ID:        "1",
		Title:     "Welcome to the Blog!",
		AuthorID:  "1",
		CreatedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(&post)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "2025-06-02T00:00:00.000Z", got["createdAt"])
	assert.Equal(t, []any{}, got["tags"])
	assert.Equal(t, "", got["coverImageUrl"])
}

func TestUser_JSONRoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	body, err := json.Marshal(models.User{ID: "1", Roles: []string{"user"}, CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	var decoded models.User
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.True(t, created.Equal(decoded.CreatedAt))
	assert.Equal(t, []string{"user"}, decoded.Roles)
}

func TestFormatTimestamp_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "2025-06-02T00:00:00.000Z", models.FormatTimestamp(time.Date(2025, 6, 2, 2, 0, 0, 0, zone)))
}
