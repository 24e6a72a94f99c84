package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
)

type EmailHandler struct {
	Svc    ContactService
	Logger *logrus.Logger
}

// Send forwards a contact form message.
func (h *EmailHandler) Send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	in := application.ContactInput{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := h.Svc.SendContact(c.Request.Context(), in); err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email has been sent"})
}
