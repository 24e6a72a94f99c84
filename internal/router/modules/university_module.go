package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

type UniversityModule struct {
	Handler *handlers.UniversityHandler
	Guards  Guards
}

func NewUniversityModule(h *handlers.UniversityHandler, g Guards) *UniversityModule {
	return &UniversityModule{Handler: h, Guards: g}
}

func (m *UniversityModule) Register(rg *gin.RouterGroup) {
	rg.GET("/universities/public", m.Guards.Limit(120, time.Minute, middleware.KeyByIP()), m.Handler.Public)

	g := rg.Group("/universities", m.Guards.Authed()...)
	{
		g.GET("", m.Handler.List)
		g.GET("/interested_only", m.Handler.InterestedOnly)
		g.GET("/search", m.Handler.Search)
	}
}
