package models

import "time"

// Post statuses. Only published posts surface in the feed, search and
// SEO pages.
const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

// Post represents a blog post
type Post struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:200;not null"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	Description     string    `json:"description" gorm:"size:500"`
	ImageURL        string    `json:"image_url" gorm:"size:500"`
	Tags            string    `json:"tags" gorm:"size:200"` // comma-separated
	Category        string    `json:"category" gorm:"size:100"`
	Status          string    `json:"status" gorm:"size:20;default:'published';index"`
	IsFeatured      bool      `json:"is_featured" gorm:"default:false"`
	IsAutoGenerated bool      `json:"is_auto_generated" gorm:"default:false;index"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time `json:"updated_at"`
	PublishedAt     time.Time `json:"published_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required,min=1"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Tags        string `json:"tags,omitempty" validate:"omitempty,max=200"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content     string `json:"content,omitempty" validate:"omitempty,min=1"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Tags        string `json:"tags,omitempty" validate:"omitempty,max=200"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}
