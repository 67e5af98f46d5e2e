package repositories

import (
	"github.com/sakmpar/social-blog/internal/models"
	"gorm.io/gorm"
)

// BlogStats aggregates site-wide counters for the stats endpoint
type BlogStats struct {
	TotalPosts         int64 `json:"total_posts"`
	TotalUsers         int64 `json:"total_users"`
	TotalLikes         int64 `json:"total_likes"`
	TotalComments      int64 `json:"total_comments"`
	TotalShares        int64 `json:"total_shares"`
	AutoGeneratedPosts int64 `json:"auto_generated_posts"`
	UserPosts          int64 `json:"user_posts"`
}

// StatsRepository defines the interface for stats aggregation
type StatsRepository interface {
	GetBlogStats() (*BlogStats, error)
}

// PostgresStatsRepository implements StatsRepository for PostgreSQL
type PostgresStatsRepository struct {
	db *gorm.DB
}

// NewPostgresStatsRepository creates a new PostgresStatsRepository
func NewPostgresStatsRepository(db *gorm.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// GetBlogStats counts posts, users and engagement across the site
func (r *PostgresStatsRepository) GetBlogStats() (*BlogStats, error) {
	var stats BlogStats

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{r.db.Model(&models.Post{}), &stats.TotalPosts},
		{r.db.Model(&models.User{}), &stats.TotalUsers},
		{r.db.Model(&models.Like{}), &stats.TotalLikes},
		{r.db.Model(&models.Comment{}), &stats.TotalComments},
		{r.db.Model(&models.Share{}), &stats.TotalShares},
		{r.db.Model(&models.Post{}).Where("is_auto_generated = ?", true), &stats.AutoGeneratedPosts},
		{r.db.Model(&models.Post{}).Where("is_auto_generated = ?", false), &stats.UserPosts},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
