package handlers

import (
	"errors"
	"net/http"

	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/adnanhq/social-media-api/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CommentHandler handles comment CRUD and comment listings.
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	logger            zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		logger:            logger,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, requireAuth, optionalAuth echo.MiddlewareFunc) {
	g.GET("/my", h.GetMyComments, requireAuth)
	g.GET("/post/:post_id", h.GetPostComments, optionalAuth)
	g.GET("/user/:user_id", h.GetUserComments, optionalAuth)
	g.POST("/:post_id", h.CreateComment, requireAuth)
	g.GET("/:comment_id", h.GetComment, optionalAuth)
	g.PUT("/:comment_id", h.UpdateComment, requireAuth)
	g.DELETE("/:comment_id", h.DeleteComment, requireAuth)
}

// CreateComment adds a comment to a post. The repository checks the parent
// post's existence and comments_enabled flag inside one transaction.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  currentUser(c).ID,
		Content: req.Content,
	}
	if err := h.commentRepository.Create(comment); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		if errors.Is(err, models.ErrCommentsDisabled) {
			return echo.NewHTTPError(http.StatusForbidden, "Comments are disabled for this post")
		}
		return err
	}

	h.logger.Debug().Uint("user_id", comment.UserID).Uint("post_id", postID).Msg("comment created")

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// GetComment retrieves a single comment with author info.
func (h *CommentHandler) GetComment(c echo.Context) error {
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"comment": comment})
}

// UpdateComment rewrites a comment owned by the requester. Ownership
// failures are reported as 404, the same as missing comments.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepository.Update(commentID, currentUser(c).ID, req.Content)
	if err != nil {
		return err
	}
	if comment == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found or unauthorized")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// DeleteComment soft-deletes a comment owned by the requester.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	ok, err := h.commentRepository.SoftDelete(commentID, currentUser(c).ID)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found or unauthorized")
	}

	h.logger.Debug().Uint("user_id", currentUser(c).ID).Uint("comment_id", commentID).Msg("comment deleted")

	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}

// GetPostComments lists a post's comments, oldest first.
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	// Verify post exists
	if _, err := h.postRepository.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}

	page, limit, offset := pageParams(c, 50)
	comments, err := h.commentRepository.GetByPostID(postID, limit, offset)
	if err != nil {
		return err
	}
	total, err := h.commentRepository.CountByPostID(postID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comments":   comments,
		"total":      total,
		"pagination": pagination(page, limit, len(comments)),
	})
}

// GetMyComments lists the requester's comments.
func (h *CommentHandler) GetMyComments(c echo.Context) error {
	return h.listUserComments(c, currentUser(c).ID)
}

// GetUserComments lists a specific user's comments.
func (h *CommentHandler) GetUserComments(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.listUserComments(c, userID)
}

func (h *CommentHandler) listUserComments(c echo.Context, userID uint) error {
	page, limit, offset := pageParams(c, 50)
	comments, err := h.commentRepository.GetByUserID(userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"comments":   comments,
		"pagination": pagination(page, limit, len(comments)),
	})
}
