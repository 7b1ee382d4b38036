package models

import "time"

// User represents a registered user of the blog.
// Password is serialized as-is; nothing redacts it on the way out.
type User struct {
	Seq             uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ID              string    `json:"id" gorm:"uniqueIndex;type:varchar(36)"`
	Username        string    `json:"username" gorm:"type:varchar(100)"`
	Password        string    `json:"password" gorm:"type:varchar(255)"`
	Email           string    `json:"email" gorm:"type:varchar(255)"`
	DisplayName     string    `json:"displayName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Roles           []string  `json:"roles" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// NewUser is the client-supplied part of a User.
type NewUser struct {
	Username        string   `json:"username" validate:"required,utf16min=3"`
	Password        string   `json:"password" validate:"required,utf16min=6"`
	Email           string   `json:"email" validate:"required,simple_email"`
	DisplayName     string   `json:"displayName,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	Roles           []string `json:"roles,omitempty"`
}
