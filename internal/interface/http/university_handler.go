package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
)

// UniversityHandler serves the reader-facing directory.
type UniversityHandler struct {
	Svc    DirectoryService
	Logger *logrus.Logger
}

func (h *UniversityHandler) Public(c *gin.Context) {
	limit, skip, ok := pageQuery(c)
	if !ok {
		return
	}
	views, err := h.Svc.Public(c.Request.Context(), c.Query("search"), limit, skip)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUniversityViews(views))
}

func (h *UniversityHandler) List(c *gin.Context) {
	limit, skip, ok := pageQuery(c)
	if !ok {
		return
	}
	views, err := h.Svc.ForUser(c.Request.Context(), middleware.UserID(c), c.Query("search"), limit, skip)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUniversityViews(views))
}

func (h *UniversityHandler) InterestedOnly(c *gin.Context) {
	limit, skip, ok := pageQuery(c)
	if !ok {
		return
	}
	views, err := h.Svc.InterestedOnly(c.Request.Context(), middleware.UserID(c), limit, skip)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUniversityViews(views))
}

func (h *UniversityHandler) Search(c *gin.Context) {
	size, err := queryInt(c, "size", 0)
	if err != nil {
		badQuery(c, err)
		return
	}
	views, err := h.Svc.Search(c.Request.Context(), middleware.UserID(c), c.Query("q"), size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUniversityViews(views))
}
