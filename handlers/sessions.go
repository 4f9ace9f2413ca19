package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionManager issues bearer tokens for the shared admin credential and
// expires them after the configured TTL.
type SessionManager struct {
	password string
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewSessionManager(password string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		password: password,
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

// Login checks the shared password and returns a fresh session token.
func (m *SessionManager) Login(password string) (string, bool) {
	if password != m.password {
		return "", false
	}
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = time.Now().Add(m.ttl)
	m.mu.Unlock()
	return token, true
}

func (m *SessionManager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Valid reports whether the token belongs to a live session, dropping it if
// it has expired.
func (m *SessionManager) Valid(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(m.sessions, token)
		return false
	}
	return true
}

// RequireAuth rejects requests without a live admin session token in the
// Authorization header.
func (m *SessionManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || !m.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
			})
			return
		}
		c.Next()
	}
}
