package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

// AuthModule is the session surface. Only the token route runs the CSRF
// guard, which issues the cookie there.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Guards  Guards
}

func NewAuthModule(h *handlers.AuthHandler, g Guards) *AuthModule {
	return &AuthModule{Handler: h, Guards: g}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	perRoute := middleware.KeyByIPAndPath()
	auth := rg.Group("/auth")
	auth.GET("/csrf_token", m.Guards.Limit(60, time.Minute, perRoute), m.Guards.CSRF, m.Handler.CSRFToken)
	auth.POST("/signup", m.Guards.Limit(5, time.Minute, perRoute), m.Handler.SignUp)
	auth.POST("/signin", m.Guards.Limit(10, time.Minute, perRoute), m.Handler.SignIn)
	auth.POST("/session/refresh", m.Guards.Limit(60, time.Minute, perRoute), m.Handler.Refresh)
	auth.POST("/signout", m.Guards.Session, m.Handler.SignOut)
	auth.GET("/google/login", m.Guards.Limit(30, time.Minute, perRoute), m.Handler.GoogleLogin)
	auth.GET("/google/callback", m.Guards.Limit(30, time.Minute, perRoute), m.Handler.GoogleCallback)
}
