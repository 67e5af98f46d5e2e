package models

import "time"

// Category represents a post category
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
