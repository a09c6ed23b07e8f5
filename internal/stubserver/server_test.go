package stubserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasocial/social-bot/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetDefault(logger.NewConsole("error", os.Stderr))
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	return New("test-secret").Router()
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func signupAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	rr := doJSON(r, http.MethodPost, "/user/signup/", "", map[string]any{
		"user":  map[string]string{"username": username, "password": "Secret123"},
		"email": username + "@example.com",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(r, http.MethodPost, "/user/login/", "", map[string]string{
		"username": username,
		"password": "Secret123",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access"])
	return resp["access"]
}

func createPost(t *testing.T, r *gin.Engine, token, content string) string {
	t.Helper()

	rr := doJSON(r, http.MethodPost, "/post/create/", token, map[string]string{"content": content})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "success", resp["status"])
	require.NotEmpty(t, resp["message"])
	return resp["message"]
}

func TestSignupSuccess(t *testing.T) {
	r := newTestRouter()

	rr := doJSON(r, http.MethodPost, "/user/signup/", "", map[string]any{
		"user":  map[string]string{"username": "alice", "password": "Secret123"},
		"email": "alice@example.com",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"success"`)
}

func TestSignupDuplicateUsername(t *testing.T) {
	r := newTestRouter()
	signupAndLogin(t, r, "alice")

	rr := doJSON(r, http.MethodPost, "/user/signup/", "", map[string]any{
		"user":  map[string]string{"username": "alice", "password": "Other456"},
		"email": "alice2@example.com",
	})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "username already taken")
}

func TestSignupMissingFields(t *testing.T) {
	r := newTestRouter()

	rr := doJSON(r, http.MethodPost, "/user/signup/", "", map[string]any{
		"user": map[string]string{"username": "", "password": ""},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter()
	signupAndLogin(t, r, "alice")

	rr := doJSON(r, http.MethodPost, "/user/login/", "", map[string]string{
		"username": "alice",
		"password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r := newTestRouter()

	rr := doJSON(r, http.MethodPost, "/user/login/", "", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreatePostRequiresAuth(t *testing.T) {
	r := newTestRouter()

	rr := doJSON(r, http.MethodPost, "/post/create/", "", map[string]string{"content": "hello"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(r, http.MethodPost, "/post/create/", "garbage-token", map[string]string{"content": "hello"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreatePostAndLike(t *testing.T) {
	r := newTestRouter()
	aliceToken := signupAndLogin(t, r, "alice")
	bobToken := signupAndLogin(t, r, "bob")

	postID := createPost(t, r, aliceToken, "Zephyr - a gentle breeze")

	rr := doJSON(r, http.MethodGet, "/post/"+postID+"/like", bobToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"success"`)
}

func TestLikeOwnPostRejected(t *testing.T) {
	r := newTestRouter()
	token := signupAndLogin(t, r, "alice")
	postID := createPost(t, r, token, "self promotion")

	rr := doJSON(r, http.MethodGet, "/post/"+postID+"/like", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "own posts")
}

func TestLikeTwiceRejected(t *testing.T) {
	r := newTestRouter()
	aliceToken := signupAndLogin(t, r, "alice")
	bobToken := signupAndLogin(t, r, "bob")
	postID := createPost(t, r, aliceToken, "once only")

	rr := doJSON(r, http.MethodGet, "/post/"+postID+"/like", bobToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(r, http.MethodGet, "/post/"+postID+"/like", bobToken, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "already liked")
}

func TestLikeUnknownPost(t *testing.T) {
	r := newTestRouter()
	token := signupAndLogin(t, r, "alice")

	rr := doJSON(r, http.MethodGet, "/post/nope/like", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePostEmptyContent(t *testing.T) {
	r := newTestRouter()
	token := signupAndLogin(t, r, "alice")

	rr := doJSON(r, http.MethodPost, "/post/create/", token, map[string]string{"content": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStats(t *testing.T) {
	r := newTestRouter()
	aliceToken := signupAndLogin(t, r, "alice")
	bobToken := signupAndLogin(t, r, "bob")
	postID := createPost(t, r, aliceToken, "stats fodder")
	doJSON(r, http.MethodGet, "/post/"+postID+"/like", bobToken, nil)

	rr := doJSON(r, http.MethodGet, "/stats/", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats["users"])
	assert.Equal(t, 1, stats["posts"])
	assert.Equal(t, 1, stats["likes"])
}
