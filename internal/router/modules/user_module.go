package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

// UserModule wires the profile routes.
// Public: GET /users/public/:user_id
// Session: GET /users/me, PUT /users, /users/profile_photo, /users/interest/:uni_id
type UserModule struct {
	Handler *handlers.UserHandler
	Guards  Guards
}

func NewUserModule(h *handlers.UserHandler, g Guards) *UserModule {
	return &UserModule{Handler: h, Guards: g}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/public/:user_id", m.Guards.Limit(120, time.Minute, middleware.KeyByIP()), m.Handler.Public)

	users := rg.Group("/users", m.Guards.Authed()...)
	{
		users.GET("/me", m.Handler.Me)
		users.PUT("", m.Handler.UpdateMe)
		users.POST("/profile_photo", m.Guards.Limit(10, time.Minute, middleware.KeyByUserID()), m.Handler.UploadPhoto)
		users.GET("/profile_photo", m.Handler.GetPhoto)
		users.POST("/interest/:uni_id", m.Handler.AddInterest)
		users.DELETE("/interest/:uni_id", m.Handler.RemoveInterest)
	}
}
