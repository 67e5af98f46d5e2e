package repositories

import (
	"github.com/sakmpar/social-blog/internal/models"
	"gorm.io/gorm"
)

// ShareRepository defines the interface for share data operations
type ShareRepository interface {
	CreateShare(share *models.Share) error
	GetShare(postID, userID uint, platform string) (*models.Share, error)
	CountSharesByPostID(postID uint) (int64, error)
}

// PostgresShareRepository implements ShareRepository for PostgreSQL
type PostgresShareRepository struct {
	db *gorm.DB
}

// NewPostgresShareRepository creates a new PostgresShareRepository
func NewPostgresShareRepository(db *gorm.DB) *PostgresShareRepository {
	return &PostgresShareRepository{db: db}
}

// CreateShare creates a new share
func (r *PostgresShareRepository) CreateShare(share *models.Share) error {
	return r.db.Create(share).Error
}

// GetShare retrieves a share by post, user and platform
func (r *PostgresShareRepository) GetShare(postID, userID uint, platform string) (*models.Share, error) {
	var share models.Share
	err := r.db.Where("post_id = ? AND user_id = ? AND platform = ?", postID, userID, platform).
		First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// CountSharesByPostID returns the number of shares of a post
func (r *PostgresShareRepository) CountSharesByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Share{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
