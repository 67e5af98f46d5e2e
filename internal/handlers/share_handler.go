package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/repositories"
	"gorm.io/gorm"
)

// defaultSharePlatform is used when the client does not name one
const defaultSharePlatform = "internal"

// ShareHandler handles share HTTP requests
type ShareHandler struct {
	shareRepository repositories.ShareRepository
	postRepository  repositories.PostRepository
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(shareRepo repositories.ShareRepository, postRepo repositories.PostRepository) *ShareHandler {
	return &ShareHandler{
		shareRepository: shareRepo,
		postRepository:  postRepo,
	}
}

// RegisterShareRoutes registers share-related routes
func (h *ShareHandler) RegisterShareRoutes(g *echo.Group) {
	g.POST("/posts/:id/share", h.SharePost)
}

// SharePost records a share of a post on a platform. Repeating the same
// share is a no-op; the share count never double-counts a user/platform pair.
func (h *ShareHandler) SharePost(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req models.CreateShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	platform := req.Platform
	if platform == "" {
		platform = defaultSharePlatform
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	userID := currentUserID(c)
	if _, err := h.shareRepository.GetShare(postID, userID, platform); err != nil {
		if err != gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		share := &models.Share{UserID: userID, PostID: postID, Platform: platform}
		if err := h.shareRepository.CreateShare(share); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	count, err := h.shareRepository.CountSharesByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Post shared successfully",
		"shares_count": count,
	})
}
