package stubserver

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUsernameTaken   = errors.New("username already taken")
	errUnknownUser     = errors.New("unknown user")
	errWrongPassword   = errors.New("wrong password")
	errPostNotFound    = errors.New("post not found")
	errAlreadyLiked    = errors.New("post already liked by this user")
	errOwnPost         = errors.New("users cannot like their own posts")
	errEmptyContent    = errors.New("content cannot be empty")
	errMissingUserData = errors.New("username and password are required")
)

type postRecord struct {
	id      string
	author  string
	content string
	likedBy map[string]struct{}
}

// store holds the stub's in-memory state. The real service persists all of
// this; the stub only needs enough to answer the bot consistently within a
// single process lifetime.
type store struct {
	mu    sync.Mutex
	users map[string][]byte // username -> bcrypt hash
	posts map[string]*postRecord
}

func newStore() *store {
	return &store{
		users: make(map[string][]byte),
		posts: make(map[string]*postRecord),
	}
}

func (s *store) createUser(username, password string) error {
	if username == "" || password == "" {
		return errMissingUserData
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return errUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	s.users[username] = hash
	return nil
}

func (s *store) authenticate(username, password string) error {
	s.mu.Lock()
	hash, exists := s.users[username]
	s.mu.Unlock()

	if !exists {
		return errUnknownUser
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return errWrongPassword
	}
	return nil
}

func (s *store) createPost(author, content string) (string, error) {
	if content == "" {
		return "", errEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.posts[id] = &postRecord{
		id:      id,
		author:  author,
		content: content,
		likedBy: make(map[string]struct{}),
	}
	return id, nil
}

func (s *store) likePost(username, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[postID]
	if !exists {
		return errPostNotFound
	}
	if post.author == username {
		return errOwnPost
	}
	if _, liked := post.likedBy[username]; liked {
		return errAlreadyLiked
	}
	post.likedBy[username] = struct{}{}
	return nil
}

// likeCount reports a post's like total, used by tests and the stats endpoint
func (s *store) likeCount(postID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, exists := s.posts[postID]
	if !exists {
		return 0, false
	}
	return len(post.likedBy), true
}

// counts returns the totals served by the stats endpoint
func (s *store) counts() (users, posts, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.posts {
		likes += len(post.likedBy)
	}
	return len(s.users), len(s.posts), likes
}
