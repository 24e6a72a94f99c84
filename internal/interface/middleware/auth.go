package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

const (
	identityKey = "identity"
	userIDKey   = "userID"
)

// SessionVerifier resolves an access token to the identity of a live session.
type SessionVerifier interface {
	Verify(ctx context.Context, accessToken string) (application.Identity, error)
}

// Auth validates the access token cookie against the session store.
// On success the identity is available through IdentityFrom.
func Auth(v SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(helpers.AccessCookie)
		id, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "unauthorised", nil)
			return
		}
		c.Set(identityKey, id)
		c.Set(userIDKey, id.UserID)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c *gin.Context) (application.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return application.Identity{}, false
	}
	id, ok := v.(application.Identity)
	return id, ok
}

// UserID is the caller's id, or "" on routes without Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
