package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	GuestPrefix = "guest-"
	maxNameLen  = 32
)

// GuestRequest is the optional body of POST /auth/guest.
type GuestRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHandler issues guest session tokens signed with secret.
func NewHandler(secret []byte, ttl time.Duration) *Handler {
	return &Handler{secret: secret, ttl: ttl, now: time.Now}
}

// IssueToken signs a session token for identity and display name.
func (h *Handler) IssueToken(identity, name string) (string, error) {
	now := h.now()
	claims := jwt.MapClaims{
		"sub":  identity,
		"name": name,
		"iat":  now.Unix(),
		"exp":  now.Add(h.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// POST /auth/guest  body: {name?}
func (h *Handler) Guest(c *gin.Context) {
	var req GuestRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
	}

	id := GuestPrefix + uuid.NewString()
	name := strings.TrimSpace(req.Name)
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	if name == "" {
		name = "Guest " + id[len(GuestPrefix):len(GuestPrefix)+4]
	}

	token, err := h.IssueToken(id, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt":  token,
		"id":   id,
		"name": name,
	})
}
