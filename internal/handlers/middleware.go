package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "wordblog_session"

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	usernameKey     = "username"
)

// requestID tags each request with an id (client-supplied or generated)
// for log correlation.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// sessionRequired aborts with 401 unless the request carries a valid
// session cookie; on success the bound username lands in the context.
func (h *Handler) sessionRequired(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not logged in"})
		return
	}

	username, err := h.services.ParseSession(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not logged in"})
		return
	}

	c.Set(usernameKey, username)
	c.Next()
}
