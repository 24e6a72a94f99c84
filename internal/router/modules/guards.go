package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

// Guards are the middleware shared by the route modules.
type Guards struct {
	Session gin.HandlerFunc // valid session cookie
	CSRF    gin.HandlerFunc
	Admin   gin.HandlerFunc // role admin; runs after Session
	Limit   func(max int, window time.Duration, key middleware.KeyFunc) gin.HandlerFunc
}

// Authed is the chain of every signed-in application route.
func (g Guards) Authed() []gin.HandlerFunc {
	return []gin.HandlerFunc{g.CSRF, g.Session, g.Limit(300, time.Minute, middleware.KeyByUserID())}
}
