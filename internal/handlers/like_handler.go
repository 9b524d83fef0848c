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

// LikeHandler handles liking/unliking posts and like listings.
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
	logger         zerolog.Logger
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, logger zerolog.Logger) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
		logger:         logger,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, requireAuth, optionalAuth echo.MiddlewareFunc) {
	g.GET("/my", h.GetMyLikedPosts, requireAuth)
	g.GET("/user/:user_id", h.GetUserLikedPosts, optionalAuth)
	g.POST("/:post_id", h.LikePost, requireAuth)
	g.DELETE("/:post_id", h.UnlikePost, requireAuth)
	g.GET("/:post_id", h.GetPostLikes, optionalAuth)
	g.GET("/:post_id/status", h.GetLikeStatus, requireAuth)
}

// LikePost records a like. The duplicate pre-check gives a friendly 400; the
// unique constraint behind the insert-or-ignore write is what actually
// prevents duplicate rows under concurrency.
func (h *LikeHandler) LikePost(c echo.Context) error {
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

	userID := currentUser(c).ID
	liked, err := h.likeRepository.HasUserLiked(postID, userID)
	if err != nil {
		return err
	}
	if liked {
		return echo.NewHTTPError(http.StatusBadRequest, "Post already liked")
	}

	like := &models.Like{PostID: postID, UserID: userID}
	created, err := h.likeRepository.Create(like)
	if err != nil {
		return err
	}
	if !created {
		// Lost the race against a concurrent like.
		return echo.NewHTTPError(http.StatusBadRequest, "Post already liked")
	}

	h.logger.Debug().Uint("user_id", userID).Uint("post_id", postID).Msg("post liked")

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post liked successfully",
		"like":    like,
	})
}

// UnlikePost removes a like.
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	userID := currentUser(c).ID
	ok, err := h.likeRepository.Delete(postID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}

	h.logger.Debug().Uint("user_id", userID).Uint("post_id", postID).Msg("post unliked")

	return c.JSON(http.StatusOK, echo.Map{"message": "Post unliked successfully"})
}

// GetPostLikes lists the likes on a post with liker info.
func (h *LikeHandler) GetPostLikes(c echo.Context) error {
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
	likes, err := h.likeRepository.GetByPostID(postID, limit, offset)
	if err != nil {
		return err
	}
	total, err := h.likeRepository.CountByPostID(postID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"likes":      likes,
		"total":      total,
		"pagination": pagination(page, limit, len(likes)),
	})
}

// GetMyLikedPosts lists the posts the requester has liked.
func (h *LikeHandler) GetMyLikedPosts(c echo.Context) error {
	return h.listLikedPosts(c, currentUser(c).ID)
}

// GetUserLikedPosts lists the posts a specific user has liked.
func (h *LikeHandler) GetUserLikedPosts(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.listLikedPosts(c, userID)
}

func (h *LikeHandler) listLikedPosts(c echo.Context, userID uint) error {
	page, limit, offset := pageParams(c, 20)
	posts, err := h.likeRepository.GetByUserID(userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": pagination(page, limit, len(posts)),
	})
}

// GetLikeStatus reports whether the requester has liked a post.
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	liked, err := h.likeRepository.HasUserLiked(postID, currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"has_liked": liked})
}
