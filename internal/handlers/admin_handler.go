package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/feedcache"
	"github.com/sakmpar/social-blog/internal/generator"
	"github.com/sakmpar/social-blog/internal/repositories"
	"github.com/sakmpar/social-blog/internal/scheduler"
	"github.com/sakmpar/social-blog/internal/sitegen"
)

// Bounds for a single on-demand generation request
const (
	defaultGenerateCount = 5
	maxGenerateCount     = 25
)

// AdminHandler handles the admin panel HTTP requests: content generation,
// scheduler control, static export and moderation.
type AdminHandler struct {
	generator         *generator.Generator
	scheduler         *scheduler.Scheduler
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	userRepository    repositories.UserRepository
	feedCache         *feedcache.Cache
	site              sitegen.SiteInfo
	defaultInterval   time.Duration
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	gen *generator.Generator,
	sched *scheduler.Scheduler,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	cache *feedcache.Cache,
	site sitegen.SiteInfo,
	defaultInterval time.Duration,
) *AdminHandler {
	return &AdminHandler{
		generator:         gen,
		scheduler:         sched,
		postRepository:    postRepo,
		commentRepository: commentRepo,
		userRepository:    userRepo,
		feedCache:         cache,
		site:              site,
		defaultInterval:   defaultInterval,
	}
}

// RegisterAdminRoutes registers the admin routes. The group must already be
// guarded by JWT and admin middleware.
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/generate", h.GenerateContent)
	g.POST("/scheduler/start", h.StartScheduler)
	g.POST("/scheduler/stop", h.StopScheduler)
	g.GET("/scheduler/status", h.SchedulerStatus)
	g.GET("/export", h.ExportSite)
	g.DELETE("/comments/:id", h.RemoveComment)
	g.PUT("/posts/:id/feature", h.FeaturePost)
}

// GenerateRequest defines the request body for on-demand generation
type GenerateRequest struct {
	Count    int    `json:"count" validate:"omitempty,min=1,max=25"`
	Language string `json:"language" validate:"omitempty,oneof=english hindi global"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

// SchedulerRequest defines the request body for starting the scheduler
type SchedulerRequest struct {
	IntervalSeconds int `json:"interval_seconds" validate:"omitempty,min=60"`
	PostsPerCycle   int `json:"posts_per_cycle" validate:"omitempty,min=1,max=25"`
}

// GenerateContent runs one on-demand content generation batch
func (h *AdminHandler) GenerateContent(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	count := req.Count
	if count <= 0 {
		count = defaultGenerateCount
	}
	if count > maxGenerateCount {
		count = maxGenerateCount
	}
	language := req.Language
	if language == "" {
		language = "english"
	}
	category := req.Category
	if category == "" {
		category = "Trending"
	}

	result, err := h.generator.GenerateAndStore(c.Request().Context(), language, count, category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.feedCache.Invalidate(c.Request().Context())

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Generated %d posts", result.Count),
		"count":   result.Count,
		"titles":  result.Titles,
	})
}

// StartScheduler starts the periodic generation loop
func (h *AdminHandler) StartScheduler(c echo.Context) error {
	var req SchedulerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	interval := h.defaultInterval
	if req.IntervalSeconds > 0 {
		interval = time.Duration(req.IntervalSeconds) * time.Second
	}

	if err := h.scheduler.Start(interval, req.PostsPerCycle); err != nil {
		if err == scheduler.ErrAlreadyRunning {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Scheduler started",
		"interval": interval.String(),
	})
}

// StopScheduler stops the periodic generation loop
func (h *AdminHandler) StopScheduler(c echo.Context) error {
	h.scheduler.Stop()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Scheduler stopped",
	})
}

// SchedulerStatus reports whether the loop is running
func (h *AdminHandler) SchedulerStatus(c echo.Context) error {
	running, interval := h.scheduler.Status()
	resp := echo.Map{
		"success": true,
		"running": running,
	}
	if running {
		resp["interval"] = interval.String()
	}
	return c.JSON(http.StatusOK, resp)
}

// ExportSite streams a ZIP archive of the static site: every published post
// rendered to HTML plus index, sitemap, robots.txt and the RSS feed.
func (h *AdminHandler) ExportSite(c echo.Context) error {
	posts, err := h.postRepository.GetAllPublishedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

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
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/zip")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, sitegen.ExportFilename(time.Now())))
	res.WriteHeader(http.StatusOK)

	return sitegen.Export(res, h.site, posts, authors)
}

// RemoveComment deactivates a comment (moderation soft-delete)
func (h *AdminHandler) RemoveComment(c echo.Context) error {
	commentID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.commentRepository.DeactivateComment(commentID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment removed",
	})
}

// FeaturePost toggles a post's featured flag
func (h *AdminHandler) FeaturePost(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if err := h.postRepository.SetFeatured(postID, !post.IsFeatured); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.feedCache.Invalidate(c.Request().Context())

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"is_featured": !post.IsFeatured,
	})
}
