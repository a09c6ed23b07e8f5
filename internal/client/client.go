package client

import (
	"context"
	"fmt"
)

// Client performs the remote social-network operations the bot consumes.
// The service itself is opaque: the bot only cares about success, the login
// token, and server-assigned post ids.
type Client interface {
	// Register signs up a new user. A failure excludes the actor from the
	// population entirely.
	Register(ctx context.Context, username, password, email string) error
	// Login authenticates a user and returns its access token
	Login(ctx context.Context, username, password string) (string, error)
	// CreatePost publishes content on behalf of the token's user and returns
	// the server-assigned post id
	CreatePost(ctx context.Context, token, content string) (string, error)
	// LikePost likes a post on behalf of the token's user
	LikePost(ctx context.Context, token, postID string) error
}

// APIError describes a non-success response from the social API
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Message)
}
