package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

// TimelineModule mounts one timeline kind under Path (/experiences or /educations).
type TimelineModule struct {
	Path    string
	Handler *handlers.TimelineHandler
	Guards  Guards
}

func NewTimelineModule(path string, h *handlers.TimelineHandler, g Guards) *TimelineModule {
	return &TimelineModule{Path: path, Handler: h, Guards: g}
}

func (m *TimelineModule) Register(rg *gin.RouterGroup) {
	rg.GET(m.Path+"/user/:user_id", m.Guards.Limit(120, time.Minute, middleware.KeyByIP()), m.Handler.ListPublic)

	g := rg.Group(m.Path, m.Guards.Authed()...)
	{
		g.GET("", m.Handler.ListMine)
		g.POST("", m.Handler.Create)
		g.PUT("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
