package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

type EmailModule struct {
	Handler *handlers.EmailHandler
	Guards  Guards
}

func NewEmailModule(h *handlers.EmailHandler, g Guards) *EmailModule {
	return &EmailModule{Handler: h, Guards: g}
}

func (m *EmailModule) Register(rg *gin.RouterGroup) {
	emails := rg.Group("/emails", m.Guards.Authed()...)
	emails.POST("/send_email", m.Guards.Limit(5, time.Minute, middleware.KeyByUserID()), m.Handler.Send)
}
