package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

// DebugModule exposes expvar metrics; it is only added outside production.
type DebugModule struct {
	Guards Guards
}

func NewDebugModule(g Guards) *DebugModule { return &DebugModule{Guards: g} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := m.Guards.Limit(120, time.Minute, middleware.KeyByIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
