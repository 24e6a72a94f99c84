package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/sportsconnect/sportsconnect-api/internal/interface/http"
)

// AdminModule wires the /admin resources behind the admin role.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Guards  Guards
}

func NewAdminModule(h *handlers.AdminHandler, g Guards) *AdminModule {
	return &AdminModule{Handler: h, Guards: g}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", append(m.Guards.Authed(), m.Guards.Admin)...)

	admin.GET("/users", m.Handler.ListUsers)
	admin.POST("/users", m.Handler.CreateUser)
	admin.PUT("/users", m.Handler.UpdateUser)
	admin.DELETE("/users", m.Handler.DeleteUsers)

	admin.GET("/universities", m.Handler.ListUniversities)
	admin.POST("/universities", m.Handler.CreateUniversity)
	admin.PUT("/universities", m.Handler.UpdateUniversity)
	admin.DELETE("/universities", m.Handler.DeleteUniversities)

	admin.GET("/university_links", m.Handler.ListLinks)
	admin.POST("/university_links", m.Handler.CreateLink)
	admin.PUT("/university_links", m.Handler.UpdateLink)
	admin.DELETE("/university_links", m.Handler.DeleteLinks)
}
