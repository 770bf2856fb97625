package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "auth_session"

// Session is the authenticated caller. Services receive it explicitly on
// every operation that acts on behalf of a user.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SetSession stores the session on the gin context
func SetSession(c *gin.Context, session *Session) {
	c.Set(sessionKey, session)
}

// GetSession is a helper function to extract the session from context
func GetSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}

	session, ok := value.(*Session)
	return session, ok && session != nil
}
