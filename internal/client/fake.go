package client

import (
	"context"

	"github.com/avasocial/social-bot/pkg/utils"
)

// FakeClient simulates the remote service without any network I/O: every
// operation succeeds and post ids come from an injected sequence. It exists
// so the allocation algorithm can be exercised offline.
type FakeClient struct {
	seq *utils.Sequence
}

// NewFakeClient creates a fake client drawing post ids from seq
func NewFakeClient(seq *utils.Sequence) *FakeClient {
	return &FakeClient{seq: seq}
}

// Register always succeeds
func (c *FakeClient) Register(_ context.Context, _, _, _ string) error {
	return nil
}

// Login succeeds with an empty token; no request ever needs one in fake mode
func (c *FakeClient) Login(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

// CreatePost assigns the next synthetic post id
func (c *FakeClient) CreatePost(_ context.Context, _, _ string) (string, error) {
	return c.seq.NextString(), nil
}

// LikePost always succeeds
func (c *FakeClient) LikePost(_ context.Context, _, _ string) error {
	return nil
}
