package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// HTTPClient talks to a real social network deployment over JSON.
// All four operations are synchronous, blocking calls.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient creates a client for the service rooted at baseURL.
// A zero timeout uses the default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type loginResponse struct {
	Access string `json:"access"`
}

// Register signs up a user via POST user/signup/
func (c *HTTPClient) Register(ctx context.Context, username, password, email string) error {
	body := map[string]any{
		"user": map[string]string{
			"username": username,
			"password": password,
		},
		"email": email,
	}

	var out statusResponse
	status, err := c.postJSON(ctx, "user/signup/", "", body, &out)
	if err != nil {
		return fmt.Errorf("register %s: %w", username, err)
	}
	if status != http.StatusOK || out.Status != "success" {
		return &APIError{Op: "register", StatusCode: status, Message: out.Message}
	}
	return nil
}

// Login authenticates via POST user/login/ and returns the access token
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var out loginResponse
	status, err := c.postJSON(ctx, "user/login/", "", body, &out)
	if err != nil {
		return "", fmt.Errorf("login %s: %w", username, err)
	}
	if status != http.StatusOK || out.Access == "" {
		return "", &APIError{Op: "login", StatusCode: status, Message: "no access token in response"}
	}
	return out.Access, nil
}

// CreatePost publishes content via POST post/create/ and returns the post id
func (c *HTTPClient) CreatePost(ctx context.Context, token, content string) (string, error) {
	body := map[string]string{"content": content}

	var out statusResponse
	status, err := c.postJSON(ctx, "post/create/", token, body, &out)
	if err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}
	if status != http.StatusOK || out.Status != "success" || out.Message == "" {
		return "", &APIError{Op: "create post", StatusCode: status, Message: out.Message}
	}
	// The service returns the new post id in the message field
	return out.Message, nil
}

// LikePost likes a post via GET post/{id}/like
func (c *HTTPClient) LikePost(ctx context.Context, token, postID string) error {
	var out statusResponse
	status, err := c.getJSON(ctx, "post/"+url.PathEscape(postID)+"/like", token, &out)
	if err != nil {
		return fmt.Errorf("like post %s: %w", postID, err)
	}
	if status != http.StatusOK || out.Status != "success" {
		return &APIError{Op: "like post", StatusCode: status, Message: out.Message}
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path, token string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)

	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path, token string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	setAuth(req, token)

	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Error responses carry their explanation in the same JSON envelope, so
	// decode failures are only fatal alongside an unexpected status code.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && resp.StatusCode == http.StatusOK {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
