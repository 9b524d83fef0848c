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

// UserHandler handles user search and profile management.
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	logger           zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		logger:           logger,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.GET("/search", h.SearchUsers, requireAuth)
	g.PUT("/me", h.UpdateProfile, requireAuth)
	g.DELETE("/me", h.DeleteAccount, requireAuth)
	g.GET("/:user_id", h.GetUserProfile, requireAuth)
}

// SearchUsers finds users by username or full name.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query is required")
	}

	page, limit, offset := pageParams(c, 20)
	users, err := h.userRepository.Search(q, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users":      users,
		"pagination": pagination(page, limit, len(users)),
	})
}

// GetUserProfile returns another user's profile with counts and whether the
// requester follows them.
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	profile, err := h.userRepository.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}

	following, err := h.followRepository.IsFollowing(currentUser(c).ID, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user": struct {
			*models.UserProfile
			IsFollowing bool `json:"is_following"`
		}{profile, following},
	})
}

// UpdateProfile updates the authenticated user's full name and/or email.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	userID := currentUser(c).ID
	user, err := h.userRepository.UpdateProfile(userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "Email already exists")
		}
		return err
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No valid fields to update")
	}

	h.logger.Debug().Uint("user_id", userID).Msg("user updated profile")

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    user.Public(),
	})
}

// DeleteAccount soft-deletes the authenticated user. The row stays behind so
// foreign keys and history remain valid, but the account can no longer
// authenticate or appear in listings.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID := currentUser(c).ID

	ok, err := h.userRepository.SoftDelete(userID)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	h.logger.Debug().Uint("user_id", userID).Msg("user deleted account")

	return c.JSON(http.StatusOK, echo.Map{"message": "Account deleted successfully"})
}
