package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/adnanhq/social-media-api/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PostHandler handles post CRUD, the feed and post search.
type PostHandler struct {
	postRepository repositories.PostRepository
	logger         zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, logger zerolog.Logger) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		logger:         logger,
	}
}

// RegisterPostRoutes registers post-related routes.
// Static segments (feed, my, search, user) must precede :post_id.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, requireAuth, optionalAuth echo.MiddlewareFunc) {
	g.POST("", h.CreatePost, requireAuth)
	g.GET("/feed", h.GetFeed, requireAuth)
	g.GET("/my", h.GetMyPosts, requireAuth)
	g.GET("/search", h.SearchPosts, optionalAuth)
	g.GET("/user/:user_id", h.GetUserPosts, optionalAuth)
	g.GET("/:post_id", h.GetPost, optionalAuth)
	g.PUT("/:post_id", h.UpdatePost, requireAuth)
	g.DELETE("/:post_id", h.DeletePost, requireAuth)
}

// CreatePost creates a new post for the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		UserID:          currentUser(c).ID,
		Content:         req.Content,
		CommentsEnabled: true,
	}
	if req.MediaURL != nil {
		post.MediaURL = *req.MediaURL
	}
	if req.CommentsEnabled != nil {
		post.CommentsEnabled = *req.CommentsEnabled
	}

	if err := h.postRepository.Create(post); err != nil {
		return err
	}

	h.logger.Debug().Uint("user_id", post.UserID).Uint("post_id", post.ID).Msg("post created")

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPost retrieves a single post with author info and counts.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"post": post})
}

// GetFeed returns posts from the requester and the accounts they follow.
func (h *PostHandler) GetFeed(c echo.Context) error {
	page, limit, offset := pageParams(c, 20)
	posts, err := h.postRepository.GetFeed(currentUser(c).ID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": pagination(page, limit, len(posts)),
	})
}

// GetMyPosts returns the requester's own posts.
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	return h.listUserPosts(c, currentUser(c).ID)
}

// GetUserPosts returns a specific user's posts.
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.listUserPosts(c, userID)
}

func (h *PostHandler) listUserPosts(c echo.Context, userID uint) error {
	page, limit, offset := pageParams(c, 20)
	posts, err := h.postRepository.GetByUserID(userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": pagination(page, limit, len(posts)),
	})
}

// SearchPosts finds posts by content substring.
func (h *PostHandler) SearchPosts(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query is required")
	}

	page, limit, offset := pageParams(c, 20)
	posts, err := h.postRepository.Search(q, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": pagination(page, limit, len(posts)),
	})
}

// UpdatePost updates a post owned by the requester. Ownership failures are
// reported as 404 so non-owners learn nothing about the post's existence.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.MediaURL != nil {
		updates["media_url"] = *req.MediaURL
	}
	if req.CommentsEnabled != nil {
		updates["comments_enabled"] = *req.CommentsEnabled
	}
	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No valid fields to update")
	}

	post, err := h.postRepository.Update(postID, currentUser(c).ID, updates)
	if err != nil {
		return err
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found or unauthorized")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost soft-deletes a post owned by the requester.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	ok, err := h.postRepository.SoftDelete(postID, currentUser(c).ID)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found or unauthorized")
	}

	h.logger.Debug().Uint("user_id", currentUser(c).ID).Uint("post_id", postID).Msg("post deleted")

	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}
