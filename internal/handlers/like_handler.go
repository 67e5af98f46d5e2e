package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/repositories"
)

// LikeHandler handles like/unlike HTTP requests
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(
	likeRepo repositories.LikeRepository,
	postRepo repositories.PostRepository,
	notificationRepo repositories.NotificationRepository,
) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		postRepository:         postRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
}

// ToggleLike likes a post if the user has not liked it yet, otherwise
// removes the like. The response reports the resulting state and count.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	claims := currentClaims(c)
	liked, err := h.likeRepository.HasUserLikedPost(postID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked {
		if err := h.likeRepository.DeleteLike(postID, claims.UserID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	} else {
		like := &models.Like{UserID: claims.UserID, PostID: postID}
		if err := h.likeRepository.CreateLike(like); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		h.notifyPostAuthor(post, claims)
	}

	count, err := h.likeRepository.CountLikesByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"liked":       !liked,
		"likes_count": count,
	})
}

func (h *LikeHandler) notifyPostAuthor(post *models.Post, claims *models.JwtCustomClaims) {
	if post.UserID == claims.UserID {
		return
	}
	notification := &models.Notification{
		Type:        models.NotificationTypeLike,
		ActorID:     claims.UserID,
		RecipientID: post.UserID,
		PostID:      post.ID,
		Message:     fmt.Sprintf("%s liked your post \"%s\"", claims.Username, post.Title),
	}
	if err := h.notificationRepository.CreateNotification(notification); err != nil {
		log.Printf("Failed to create like notification: %v", err)
	}
}
