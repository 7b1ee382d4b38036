package models

import "time"

// BlogPost represents a single blog entry. AuthorID is expected to name a
// User but is never resolved.
type BlogPost struct {
	Seq           uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ID            string    `json:"id" gorm:"uniqueIndex;type:varchar(36)"`
	Title         string    `json:"title"`
	Content       string    `json:"content" gorm:"type:text"`
	AuthorID      string    `json:"authorId" gorm:"type:varchar(36)"`
	Tags          []string  `json:"tags" gorm:"serializer:json"`
	CoverImageURL string    `json:"coverImageUrl"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// NewBlogPost is the client-supplied part of a BlogPost.
type NewBlogPost struct {
	Title         string   `json:"title" validate:"required,utf16min=3"`
	Content       string   `json:"content" validate:"required,utf16min=10"`
	AuthorID      string   `json:"authorId" validate:"required"`
	Tags          []string `json:"tags,omitempty"`
	CoverImageURL string   `json:"coverImageUrl"`
}
