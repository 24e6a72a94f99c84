package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

// noPhoto is the body of GET /users/profile_photo for users without a photo.
const noPhoto = "None"

type UserHandler struct {
	Svc            ProfileService
	Photos         PhotoService
	MaxUploadBytes int64
	Logger         *logrus.Logger
}

func (h *UserHandler) Me(c *gin.Context) {
	p, err := h.Svc.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toMe(p))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	p, err := h.Svc.UpdateMe(c.Request.Context(), middleware.UserID(c), req.patch())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUser(p))
}

func (h *UserHandler) Public(c *gin.Context) {
	p, err := h.Svc.PublicProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUser(p))
}

// UploadPhoto stores the multipart "file" and answers with its public URL.
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Abort(c, http.StatusRequestEntityTooLarge, "file is too large", nil)
			return
		}
		response.Abort(c, http.StatusBadRequest, "a multipart file field named file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer f.Close()

	url, err := h.Photos.Upload(c.Request.Context(), middleware.UserID(c), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, url)
}

func (h *UserHandler) GetPhoto(c *gin.Context) {
	url, err := h.Photos.Current(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if url == "" {
		url = noPhoto
	}
	c.JSON(http.StatusOK, url)
}

func (h *UserHandler) AddInterest(c *gin.Context) {
	uniID, ok := pathInt64(c, "uni_id")
	if !ok {
		return
	}
	p, err := h.Svc.AddInterest(c.Request.Context(), middleware.UserID(c), uniID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, toUser(p))
}

func (h *UserHandler) RemoveInterest(c *gin.Context) {
	uniID, ok := pathInt64(c, "uni_id")
	if !ok {
		return
	}
	if err := h.Svc.RemoveInterest(c.Request.Context(), middleware.UserID(c), uniID); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
