package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adnanhq/social-media-api/internal/auth"
	"github.com/adnanhq/social-media-api/internal/router"
	"github.com/adnanhq/social-media-api/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer wires the full application against an isolated in-memory
// database, so tests exercise routing, auth middleware and the error
// handler exactly as production requests would.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	db := &config.DB{Gorm: gdb}
	require.NoError(t, db.Migrate())
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)

	e := echo.New()
	router.SetupRoutes(e, db, tokens, &config.Config{Env: "test"}, zerolog.Nop())
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its token and id.
func registerUser(t *testing.T, e *echo.Echo, username string) (string, uint) {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "secret123",
		"full_name": "User " + username,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	id, _ := user["id"].(float64)
	require.NotZero(t, id)

	return token, uint(id)
}

// createPost creates a post through the API and returns its id.
func createPost(t *testing.T, e *echo.Echo, token string, body map[string]interface{}) uint {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/api/posts", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	post, _ := resp["post"].(map[string]interface{})
	require.NotNil(t, post)
	id, _ := post["id"].(float64)
	require.NotZero(t, id)
	return uint(id)
}
