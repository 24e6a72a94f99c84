package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

// TimelineHandler serves /experiences and /educations; one instance per kind.
type TimelineHandler struct {
	Svc    TimelineService
	Logger *logrus.Logger
}

func (h *TimelineHandler) ListMine(c *gin.Context) {
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toTimelines(items))
}

func (h *TimelineHandler) ListPublic(c *gin.Context) {
	items, err := h.Svc.ListPublic(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toTimelines(items))
}

func (h *TimelineHandler) Create(c *gin.Context) {
	var req timelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	it, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, toTimeline(*it))
}

func (h *TimelineHandler) Update(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	var req timelinePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	it, err := h.Svc.Update(c.Request.Context(), middleware.UserID(c), id, req.patch())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toTimeline(*it))
}

func (h *TimelineHandler) Delete(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
