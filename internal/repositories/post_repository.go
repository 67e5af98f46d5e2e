package repositories

import (
	"github.com/sakmpar/social-blog/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPublishedPosts(offset, limit int) ([]models.Post, int64, error)
	GetAllPublishedPosts() ([]models.Post, error)
	SearchPosts(query string, offset, limit int) ([]models.Post, int64, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	SetFeatured(id uint, featured bool) error
	CountPostsByUser(userID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedPosts retrieves published posts newest-first with the total
// count for pagination.
func (r *PostgresPostRepository) GetPublishedPosts(offset, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	q := r.db.Model(&models.Post{}).Where("status = ?", models.PostStatusPublished)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetAllPublishedPosts retrieves every published post newest-first, for the
// SEO surfaces and the site export.
func (r *PostgresPostRepository) GetAllPublishedPosts() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ?", models.PostStatusPublished).
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchPosts searches published posts by title, content or tags
// (case-insensitive).
func (r *PostgresPostRepository) SearchPosts(query string, offset, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&models.Post{}).
		Where("status = ?", models.PostStatusPublished).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)",
			pattern, pattern, pattern)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post along with its likes, comments and shares
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Share{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SetFeatured flips the featured flag on a post
func (r *PostgresPostRepository) SetFeatured(id uint, featured bool) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).Update("is_featured", featured)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPostsByUser returns the number of posts authored by a user
func (r *PostgresPostRepository) CountPostsByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
