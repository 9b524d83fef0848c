package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthCheck reports process status and uptime.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Seconds(),
	})
}

// Root describes the service and its sub-routes.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Social Media API",
		"version": "1.0.0",
		"endpoints": echo.Map{
			"auth":     "/api/auth",
			"users":    "/api/users",
			"posts":    "/api/posts",
			"likes":    "/api/likes",
			"comments": "/api/comments",
		},
	})
}
