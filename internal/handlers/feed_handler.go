package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/feedcache"
	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/repositories"
)

const (
	defaultPerPage      = 10
	maxPerPage          = 50
	feedContentPreview  = 500
	recentCommentsLimit = 3
)

// FeedHandler handles feed and search HTTP requests
type FeedHandler struct {
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	commentRepository repositories.CommentRepository
	likeRepository    repositories.LikeRepository
	shareRepository   repositories.ShareRepository
	feedCache         *feedcache.Cache
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	shareRepo repositories.ShareRepository,
	cache *feedcache.Cache,
) *FeedHandler {
	return &FeedHandler{
		postRepository:    postRepo,
		userRepository:    userRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
		shareRepository:   shareRepo,
		feedCache:         cache,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/posts/search", h.SearchPosts)
}

// FeedComment is a recent comment inlined into a feed post
type FeedComment struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// FeedPost is a feed entry enriched with author, counts and recent comments
type FeedPost struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Content         string             `json:"content"`
	Description     string             `json:"description"`
	ImageURL        string             `json:"image_url"`
	Category        string             `json:"category"`
	Tags            []string           `json:"tags"`
	Author          models.UserCompact `json:"author"`
	CreatedAt       time.Time          `json:"created_at"`
	LikesCount      int64              `json:"likes_count"`
	CommentsCount   int64              `json:"comments_count"`
	SharesCount     int64              `json:"shares_count"`
	UserLiked       bool               `json:"user_liked"`
	RecentComments  []FeedComment      `json:"recent_comments"`
	IsFeatured      bool               `json:"is_featured"`
	IsAutoGenerated bool               `json:"is_auto_generated"`
}

// FeedResponse is the paginated feed envelope
type FeedResponse struct {
	Success bool       `json:"success"`
	Posts   []FeedPost `json:"posts"`
	HasNext bool       `json:"has_next"`
	Page    int        `json:"page"`
	Total   int64      `json:"total"`
}

// GetFeed returns published posts newest-first with engagement data.
// Anonymous pages are served from the feed cache when Redis is configured.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	page, perPage := paginationParams(c)
	userID := currentUserID(c)

	// Only anonymous responses are cacheable; user_liked is per-user.
	if userID == 0 {
		if payload, ok := h.feedCache.Get(c.Request().Context(), page, perPage); ok {
			return c.JSONBlob(http.StatusOK, payload)
		}
	}

	posts, total, err := h.postRepository.GetPublishedPosts((page-1)*perPage, perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	feedPosts, err := h.enrichPosts(posts, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := FeedResponse{
		Success: true,
		Posts:   feedPosts,
		HasNext: int64(page*perPage) < total,
		Page:    page,
		Total:   total,
	}

	if userID == 0 {
		if payload, err := json.Marshal(resp); err == nil {
			h.feedCache.Set(c.Request().Context(), page, perPage, payload)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// SearchPosts searches published posts by title, content or tags
func (h *FeedHandler) SearchPosts(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query is required")
	}

	page, perPage := paginationParams(c)
	posts, total, err := h.postRepository.SearchPosts(query, (page-1)*perPage, perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	feedPosts, err := h.enrichPosts(posts, currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, FeedResponse{
		Success: true,
		Posts:   feedPosts,
		HasNext: int64(page*perPage) < total,
		Page:    page,
		Total:   total,
	})
}

// enrichPosts attaches authors, counts, liked flags and recent comments
func (h *FeedHandler) enrichPosts(posts []models.Post, userID uint) ([]FeedPost, error) {
	authorIDs := make([]uint, 0, len(posts))
	seen := make(map[uint]bool, len(posts))
	for i := range posts {
		if !seen[posts[i].UserID] {
			seen[posts[i].UserID] = true
			authorIDs = append(authorIDs, posts[i].UserID)
		}
	}

	authors, err := h.userRepository.GetUsersByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	feedPosts := make([]FeedPost, 0, len(posts))
	for i := range posts {
		post := &posts[i]

		likes, err := h.likeRepository.CountLikesByPostID(post.ID)
		if err != nil {
			return nil, err
		}
		comments, err := h.commentRepository.CountCommentsByPostID(post.ID)
		if err != nil {
			return nil, err
		}
		shares, err := h.shareRepository.CountSharesByPostID(post.ID)
		if err != nil {
			return nil, err
		}

		userLiked := false
		if userID > 0 {
			userLiked, _ = h.likeRepository.HasUserLikedPost(post.ID, userID)
		}

		recentComments, err := h.recentComments(post.ID)
		if err != nil {
			return nil, err
		}

		author := models.UserCompact{}
		if u, ok := authors[post.UserID]; ok {
			author = u.ToCompact()
		}

		feedPosts = append(feedPosts, FeedPost{
			ID:              post.ID,
			Title:           post.Title,
			Content:         previewContent(post.Content),
			Description:     post.Description,
			ImageURL:        post.ImageURL,
			Category:        post.Category,
			Tags:            splitTags(post.Tags),
			Author:          author,
			CreatedAt:       post.CreatedAt,
			LikesCount:      likes,
			CommentsCount:   comments,
			SharesCount:     shares,
			UserLiked:       userLiked,
			RecentComments:  recentComments,
			IsFeatured:      post.IsFeatured,
			IsAutoGenerated: post.IsAutoGenerated,
		})
	}
	return feedPosts, nil
}

func (h *FeedHandler) recentComments(postID uint) ([]FeedComment, error) {
	comments, err := h.commentRepository.GetRecentCommentsByPostID(postID, recentCommentsLimit)
	if err != nil {
		return nil, err
	}

	commenterIDs := make([]uint, 0, len(comments))
	for i := range comments {
		commenterIDs = append(commenterIDs, comments[i].UserID)
	}
	commenters, err := h.userRepository.GetUsersByIDs(commenterIDs)
	if err != nil {
		return nil, err
	}

	out := make([]FeedComment, 0, len(comments))
	for i := range comments {
		comment := &comments[i]
		authorName := ""
		if u, ok := commenters[comment.UserID]; ok {
			authorName = u.FullName
		}
		out = append(out, FeedComment{
			ID:        comment.ID,
			Content:   comment.Content,
			Author:    authorName,
			CreatedAt: comment.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return out, nil
}

func paginationParams(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	return page, perPage
}

// previewContent truncates by character count so multi-byte content is
// never cut mid-rune.
func previewContent(content string) string {
	runes := []rune(content)
	if len(runes) > feedContentPreview {
		return string(runes[:feedContentPreview]) + "..."
	}
	return content
}

func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
