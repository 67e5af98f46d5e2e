package models

import "time"

// Share represents a share of a post on an external platform. A user
// shares a given post on a given platform at most once.
type Share struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_platform_share"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_platform_share"`
	Platform  string    `json:"platform" gorm:"size:50;uniqueIndex:idx_user_post_platform_share"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateShareRequest defines the request body for sharing a post
type CreateShareRequest struct {
	Platform string `json:"platform,omitempty" validate:"omitempty,max=50"`
}
