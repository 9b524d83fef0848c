package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentFlow(t *testing.T) {
	e := newTestServer(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, _ := registerUser(t, e, "bob")
	postID := createPost(t, e, aliceToken, map[string]interface{}{"content": "discuss"})

	rec := do(t, e, http.MethodPost, fmt.Sprintf("/api/comments/%d", postID), bobToken, map[string]interface{}{
		"content": "great post",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	comment, _ := decode(t, rec)["comment"].(map[string]interface{})
	require.NotNil(t, comment)
	commentID := uint(comment["id"].(float64))

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/api/comments/%d", commentID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got, _ := decode(t, rec)["comment"].(map[string]interface{})
	assert.Equal(t, "great post", got["content"])
	assert.Equal(t, "bob", got["username"])

	rec = do(t, e, http.MethodPut, fmt.Sprintf("/api/comments/%d", commentID), bobToken, map[string]interface{}{
		"content": "edited comment",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/api/comments/%d", commentID), "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Comment not found", decode(t, rec)["error"])
}

func TestCommentOnDisabledPost(t *testing.T) {
	e := newTestServer(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, _ := registerUser(t, e, "bob")
	postID := createPost(t, e, aliceToken, map[string]interface{}{
		"content":          "no comments please",
		"comments_enabled": false,
	})

	rec := do(t, e, http.MethodPost, fmt.Sprintf("/api/comments/%d", postID), bobToken, map[string]interface{}{
		"content": "but I insist",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Comments are disabled for this post", decode(t, rec)["error"])
}

func TestCommentOnMissingPost(t *testing.T) {
	e := newTestServer(t)
	token, _ := registerUser(t, e, "alice")

	rec := do(t, e, http.MethodPost, "/api/comments/9999", token, map[string]interface{}{
		"content": "hello?",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", decode(t, rec)["error"])
}

func TestForeignCommentUpdateAndDelete(t *testing.T) {
	e := newTestServer(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, _ := registerUser(t, e, "bob")
	postID := createPost(t, e, aliceToken, map[string]interface{}{"content": "discuss"})

	rec := do(t, e, http.MethodPost, fmt.Sprintf("/api/comments/%d", postID), aliceToken, map[string]interface{}{
		"content": "alice's comment",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	comment, _ := decode(t, rec)["comment"].(map[string]interface{})
	commentID := uint(comment["id"].(float64))

	rec = do(t, e, http.MethodPut, fmt.Sprintf("/api/comments/%d", commentID), bobToken, map[string]interface{}{
		"content": "hijacked",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Comment not found or unauthorized", decode(t, rec)["error"])

	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), bobToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostCommentsListing(t *testing.T) {
	e := newTestServer(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, _ := registerUser(t, e, "bob")
	postID := createPost(t, e, aliceToken, map[string]interface{}{"content": "discuss"})

	for _, content := range []string{"first", "second"} {
		rec := do(t, e, http.MethodPost, fmt.Sprintf("/api/comments/%d", postID), bobToken, map[string]interface{}{
			"content": content,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, e, http.MethodGet, fmt.Sprintf("/api/comments/post/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["total"])
	comments, _ := body["comments"].([]interface{})
	require.Len(t, comments, 2)
	first := comments[0].(map[string]interface{})
	assert.Equal(t, "first", first["content"])

	// Comment count shows up on the post
	rec = do(t, e, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	post, _ := decode(t, rec)["post"].(map[string]interface{})
	assert.Equal(t, float64(2), post["comment_count"])
}

func TestMyComments(t *testing.T) {
	e := newTestServer(t)
	aliceToken, aliceID := registerUser(t, e, "alice")
	bobToken, _ := registerUser(t, e, "bob")
	postID := createPost(t, e, aliceToken, map[string]interface{}{"content": "a post"})

	rec := do(t, e, http.MethodPost, fmt.Sprintf("/api/comments/%d", postID), bobToken, map[string]interface{}{
		"content": "from bob",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/comments/my", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	comments, _ := decode(t, rec)["comments"].([]interface{})
	require.Len(t, comments, 1)
	c := comments[0].(map[string]interface{})
	assert.Equal(t, "from bob", c["content"])
	assert.Equal(t, "a post", c["post_content"])
	assert.Equal(t, float64(aliceID), c["post_user_id"])
}
