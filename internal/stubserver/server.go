package stubserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/avasocial/social-bot/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// Server is an in-memory implementation of the social network API the bot
// consumes: user signup and login, post creation, and post liking. It lets
// the bot run end to end without a real deployment.
type Server struct {
	secret []byte
	store  *store
	logger *slog.Logger
}

// New creates a stub server signing its tokens with the given secret
func New(secret string) *Server {
	return &Server{
		secret: []byte(secret),
		store:  newStore(),
		logger: logger.Default,
	}
}

// SetLogger sets the server's logger
func (s *Server) SetLogger(l *slog.Logger) {
	s.logger = l
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/user/signup/", s.handleSignup)
	r.POST("/user/login/", s.handleLogin)
	r.GET("/stats/", s.handleStats)

	authed := r.Group("/", s.authRequired())
	authed.POST("/post/create/", s.handleCreatePost)
	authed.GET("/post/:id/like", s.handleLikePost)

	return r
}

type signupRequest struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"user"`
	Email string `json:"email"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body: " + err.Error()})
		return
	}

	if err := s.store.createUser(req.User.Username, req.User.Password); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errUsernameTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"status": "error", "message": err.Error()})
		return
	}

	s.logger.Info("user registered", "username", req.User.Username)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body: " + err.Error()})
		return
	}

	if err := s.store.authenticate(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": req.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": signed})
}

type createPostRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleCreatePost(c *gin.Context) {
	username := c.GetString("username")

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body: " + err.Error()})
		return
	}

	id, err := s.store.createPost(username, req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	s.logger.Info("post created", "username", username, "post_id", id)
	// The post id travels in the message field
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": id})
}

func (s *Server) handleLikePost(c *gin.Context) {
	username := c.GetString("username")
	postID := c.Param("id")

	if err := s.store.likePost(username, postID); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errPostNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"status": "error", "message": err.Error()})
		return
	}

	s.logger.Info("post liked", "username", username, "post_id", postID)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) handleStats(c *gin.Context) {
	users, posts, likes := s.store.counts()
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"posts": posts,
		"likes": likes,
	})
}

// authRequired validates the Bearer token and stores the username in the
// request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "authorization header missing"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid authorization format, expected: Bearer <token>"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid token claims"})
			return
		}
		username, _ := claims["username"].(string)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "token carries no username"})
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
