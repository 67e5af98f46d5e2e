package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/repositories"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	postRepository         repositories.PostRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		postRepository:         postRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetComments)
}

// CommentResponse is a comment enriched with its author
type CommentResponse struct {
	ID        uint               `json:"id"`
	Content   string             `json:"content"`
	ParentID  *uint              `json:"parent_id,omitempty"`
	Author    models.UserCompact `json:"author"`
	CreatedAt string             `json:"created_at"`
}

// CreateComment adds a comment to a post and notifies the post author
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if req.ParentID != nil {
		parent, err := h.commentRepository.GetCommentByID(*req.ParentID)
		if err != nil || parent.PostID != postID {
			return echo.NewHTTPError(http.StatusBadRequest, "Parent comment not found on this post")
		}
	}

	claims := currentClaims(c)
	comment := &models.Comment{
		Content:  req.Content,
		UserID:   claims.UserID,
		PostID:   postID,
		ParentID: req.ParentID,
		IsActive: true,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.notifyPostAuthor(post, claims)

	count, err := h.commentRepository.CountCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":        true,
		"message":        "Comment added successfully",
		"comment_id":     comment.ID,
		"comments_count": count,
	})
}

// GetComments lists the active comments of a post, newest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	authorIDs := make([]uint, 0, len(comments))
	for i := range comments {
		authorIDs = append(authorIDs, comments[i].UserID)
	}
	authors, err := h.userRepository.GetUsersByIDs(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		comment := &comments[i]
		author := models.UserCompact{}
		if u, ok := authors[comment.UserID]; ok {
			author = u.ToCompact()
		}
		out = append(out, CommentResponse{
			ID:        comment.ID,
			Content:   comment.Content,
			ParentID:  comment.ParentID,
			Author:    author,
			CreatedAt: comment.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"comments": out,
	})
}

// notifyPostAuthor records a comment notification unless the commenter is
// commenting on their own post. Notification failures are not surfaced to
// the client.
func (h *CommentHandler) notifyPostAuthor(post *models.Post, claims *models.JwtCustomClaims) {
	if post.UserID == claims.UserID {
		return
	}
	notification := &models.Notification{
		Type:        models.NotificationTypeComment,
		ActorID:     claims.UserID,
		RecipientID: post.UserID,
		PostID:      post.ID,
		Message:     fmt.Sprintf("%s commented on your post \"%s\"", claims.Username, post.Title),
	}
	if err := h.notificationRepository.CreateNotification(notification); err != nil {
		log.Printf("Failed to create comment notification: %v", err)
	}
}
