package handlers

import (
	"strconv"

	"github.com/adnanhq/social-media-api/internal/middleware"
	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/labstack/echo/v4"
)

// currentUser returns the authenticated user attached by the auth
// middleware, or nil on optional-auth routes without a token.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(middleware.UserContextKey).(*models.User)
	return user
}

// maxPageLimit caps the page size a client can request.
const maxPageLimit = 100

// pageParams reads page/limit query parameters and converts them to an
// offset. Page defaults to 1; limit falls back to defaultLimit when missing
// or invalid, and is clamped to maxPageLimit.
func pageParams(c echo.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, (page - 1) * limit
}

// pagination builds the collection pagination envelope. hasMore is the cheap
// heuristic: a full page implies more results may follow (it false-negatives
// only when the last page exactly fills the limit).
func pagination(page, limit, count int) echo.Map {
	return echo.Map{
		"page":    page,
		"limit":   limit,
		"hasMore": count == limit,
	}
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
