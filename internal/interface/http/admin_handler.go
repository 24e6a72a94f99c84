package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

// AdminHandler serves the /admin resources. Every list endpoint follows the
// same pattern: eq.<id> returns one object, anything else a page plus the
// Content-Range total.
type AdminHandler struct {
	Users        UserAdminService
	Universities UniversityAdminService
	Logger       *logrus.Logger
}

// Users.

func (h *AdminHandler) ListUsers(c *gin.Context) {
	p, ok := listParams(c, repository.UserList)
	if !ok {
		return
	}
	if p.Filter.IsSingle() {
		u, err := h.Users.GetUser(c.Request.Context(), p.Filter.Value())
		if err != nil {
			fail(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, toAdminUser(*u))
		return
	}
	page, err := h.Users.ListUsers(c.Request.Context(), p)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.List(c, mapSlice(page.Items, toAdminUser), page.Total)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req adminUserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, err := h.Users.CreateUser(c.Request.Context(), req.user(), req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, toAdminUser(*u))
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := singleID(c)
	if !ok {
		return
	}
	var req adminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, err := h.Users.UpdateUser(c.Request.Context(), id, req.patch())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toAdminUser(*u))
}

func (h *AdminHandler) DeleteUsers(c *gin.Context) {
	f, ok := idFilter(c)
	if !ok {
		return
	}
	if err := h.Users.DeleteUsers(c.Request.Context(), f); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// Universities.

func (h *AdminHandler) ListUniversities(c *gin.Context) {
	p, ok := listParams(c, repository.UniversityList)
	if !ok {
		return
	}
	if p.Filter.IsSingle() {
		u, err := h.Universities.GetUniversity(c.Request.Context(), p.Filter.Value())
		if err != nil {
			fail(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, toUniversity(*u))
		return
	}
	page, err := h.Universities.ListUniversities(c.Request.Context(), p)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.List(c, toUniversities(page.Items), page.Total)
}

func (h *AdminHandler) CreateUniversity(c *gin.Context) {
	var req universityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, err := h.Universities.CreateUniversity(c.Request.Context(), req.university())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, toUniversity(*u))
}

func (h *AdminHandler) UpdateUniversity(c *gin.Context) {
	id, ok := singleID(c)
	if !ok {
		return
	}
	var req universityPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, err := h.Universities.UpdateUniversity(c.Request.Context(), id, req.patch())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUniversity(*u))
}

func (h *AdminHandler) DeleteUniversities(c *gin.Context) {
	f, ok := idFilter(c)
	if !ok {
		return
	}
	if err := h.Universities.DeleteUniversities(c.Request.Context(), f); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// University links.

func (h *AdminHandler) ListLinks(c *gin.Context) {
	p, ok := listParams(c, repository.UniversityLinkList)
	if !ok {
		return
	}
	if p.Filter.IsSingle() {
		l, err := h.Universities.GetLink(c.Request.Context(), p.Filter.Value())
		if err != nil {
			fail(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, toLink(*l))
		return
	}
	page, err := h.Universities.ListLinks(c.Request.Context(), p)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.List(c, mapSlice(page.Items, toLink), page.Total)
}

func (h *AdminHandler) CreateLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	l, err := h.Universities.CreateLink(c.Request.Context(), entity.UniversityLink{Name: req.Name, Link: req.Link})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, toLink(*l))
}

func (h *AdminHandler) UpdateLink(c *gin.Context) {
	id, ok := singleID(c)
	if !ok {
		return
	}
	var req linkPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	l, err := h.Universities.UpdateLink(c.Request.Context(), id, entity.UniversityLinkPatch{Name: req.Name, Link: req.Link})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toLink(*l))
}

func (h *AdminHandler) DeleteLinks(c *gin.Context) {
	f, ok := idFilter(c)
	if !ok {
		return
	}
	if err := h.Universities.DeleteLinks(c.Request.Context(), f); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
