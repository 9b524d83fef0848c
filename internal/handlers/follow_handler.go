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

// FollowHandler handles follow/unfollow and relationship listings.
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	logger           zerolog.Logger
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, logger zerolog.Logger) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		logger:           logger,
	}
}

// RegisterFollowRoutes registers follow-related routes on the users group
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group, requireAuth, optionalAuth echo.MiddlewareFunc) {
	g.GET("/me/following", h.GetMyFollowing, requireAuth)
	g.GET("/me/followers", h.GetMyFollowers, requireAuth)
	g.POST("/:user_id/follow", h.Follow, requireAuth)
	g.DELETE("/:user_id/follow", h.Unfollow, requireAuth)
	g.GET("/:user_id/following", h.GetUserFollowing, optionalAuth)
	g.GET("/:user_id/followers", h.GetUserFollowers, optionalAuth)
	g.GET("/:user_id/stats", h.GetFollowStats, optionalAuth)
}

// Follow creates a follow edge from the requester to the target user.
func (h *FollowHandler) Follow(c echo.Context) error {
	targetID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	followerID := currentUser(c).ID
	if followerID == targetID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	// Verify the target exists and is visible
	if _, err := h.userRepository.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: targetID}
	created, err := h.followRepository.Create(follow)
	if err != nil {
		if errors.Is(err, models.ErrSelfFollow) {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
		}
		return err
	}
	if !created {
		return echo.NewHTTPError(http.StatusBadRequest, "Already following this user")
	}

	h.logger.Debug().Uint("follower_id", followerID).Uint("following_id", targetID).Msg("user followed")

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Successfully followed user",
		"follow":  follow,
	})
}

// Unfollow removes a follow edge.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	targetID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	followerID := currentUser(c).ID
	ok, err := h.followRepository.Delete(followerID, targetID)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Follow relationship not found")
	}

	h.logger.Debug().Uint("follower_id", followerID).Uint("following_id", targetID).Msg("user unfollowed")

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully unfollowed user"})
}

// GetMyFollowing lists the accounts the requester follows.
func (h *FollowHandler) GetMyFollowing(c echo.Context) error {
	return h.listFollowing(c, currentUser(c).ID)
}

// GetMyFollowers lists the requester's followers.
func (h *FollowHandler) GetMyFollowers(c echo.Context) error {
	return h.listFollowers(c, currentUser(c).ID)
}

// GetUserFollowing lists the accounts a given user follows.
func (h *FollowHandler) GetUserFollowing(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.listFollowing(c, userID)
}

// GetUserFollowers lists a given user's followers.
func (h *FollowHandler) GetUserFollowers(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.listFollowers(c, userID)
}

func (h *FollowHandler) listFollowing(c echo.Context, userID uint) error {
	page, limit, offset := pageParams(c, 50)
	following, err := h.followRepository.GetFollowing(userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"following":  following,
		"pagination": pagination(page, limit, len(following)),
	})
}

func (h *FollowHandler) listFollowers(c echo.Context, userID uint) error {
	page, limit, offset := pageParams(c, 50)
	followers, err := h.followRepository.GetFollowers(userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"followers":  followers,
		"pagination": pagination(page, limit, len(followers)),
	})
}

// GetFollowStats returns follower/following counts for a user.
func (h *FollowHandler) GetFollowStats(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	stats, err := h.followRepository.Stats(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": stats})
}
