package handlers

import (
	"errors"
	"net/http"

	"github.com/adnanhq/social-media-api/internal/auth"
	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/adnanhq/social-media-api/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and session introspection.
type AuthHandler struct {
	userRepository repositories.UserRepository
	tokenService   *auth.TokenService
	logger         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokens *auth.TokenService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		tokenService:   tokens,
		logger:         logger,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/login/email", h.LoginWithEmail)
	g.GET("/profile", h.GetProfile, requireAuth)
	g.GET("/verify", h.VerifyToken, requireAuth)
	g.POST("/logout", h.Logout, requireAuth)
}

// Register creates a new account and returns a session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Pre-check both unique columns for friendlier conflict messages. The
	// store constraints remain the final authority under races.
	if _, err := h.userRepository.GetByUsername(req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := h.userRepository.GetByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
	}
	if err := h.userRepository.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The unique indexes also cover soft-deleted accounts, so the
			// disambiguation lookup must not be visibility-scoped.
			taken, lookupErr := h.userRepository.UsernameExists(req.Username)
			if lookupErr != nil {
				return lookupErr
			}
			if taken {
				return echo.NewHTTPError(http.StatusConflict, "Username already exists")
			}
			return echo.NewHTTPError(http.StatusConflict, "Email already exists")
		}
		return err
	}

	token, err := h.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}

	h.logger.Debug().Str("username", user.Username).Msg("new user registered")

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user.Public(),
		"token":   token,
	})
}

// Login authenticates by username. Unknown users and wrong passwords yield
// the same generic 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}
	return h.finishLogin(c, user, req.Password)
}

// LoginWithEmail authenticates by email.
func (h *AuthHandler) LoginWithEmail(c echo.Context) error {
	var req models.EmailLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}
	return h.finishLogin(c, user, req.Password)
}

func (h *AuthHandler) finishLogin(c echo.Context, user *models.User, password string) error {
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}

	h.logger.Debug().Str("username", user.Username).Msg("user logged in")

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

// GetProfile returns the authenticated user's profile with counts.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user := currentUser(c)

	profile, err := h.userRepository.GetProfile(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"user": profile})
}

// VerifyToken confirms the presented token resolves to a live user. The
// middleware has already done the work by the time this runs.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user":  user.Public(),
	})
}

// Logout only logs; tokens are stateless and expire on their own.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.logger.Debug().Uint("user_id", currentUser(c).ID).Msg("user logged out")
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}
