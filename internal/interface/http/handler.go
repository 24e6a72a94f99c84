package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
	"github.com/sportsconnect/sportsconnect-api/pkg/validation"
)

func statusOf(k application.Kind) int {
	switch k {
	case application.KindBadRequest:
		return http.StatusBadRequest
	case application.KindUnauthenticated:
		return http.StatusUnauthorized
	case application.KindForbidden:
		return http.StatusForbidden
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindConflict:
		return http.StatusConflict
	case application.KindUnprocessable:
		return http.StatusUnprocessableEntity
	case application.KindUpstream:
		return http.StatusBadGateway
	case application.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as the error envelope. Internal errors are logged and
// their message is not exposed.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var ae *application.Error
	if errors.As(err, &ae) && ae.Kind != application.KindInternal {
		response.Abort(c, statusOf(ae.Kind), ae.Message, nil)
		return
	}
	if errors.Is(err, repository.ErrValueTooLong) {
		response.Abort(c, http.StatusBadRequest, "a field exceeds its maximum length", nil)
		return
	}
	_ = c.Error(err)
	if logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		}).Error("request failed")
	}
	response.Abort(c, http.StatusInternalServerError, "internal server error", nil)
}

func badPayload(c *gin.Context, err error) {
	response.Abort(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

func badQuery(c *gin.Context, err error) {
	response.Abort(c, http.StatusBadRequest, "invalid query parameters", err.Error())
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

// listRaw collects id, limit, offset, order and q with their defaults.
func listRaw(c *gin.Context) (listing.Raw, error) {
	raw := listing.DefaultRaw()
	raw.ID = c.DefaultQuery("id", raw.ID)
	raw.Order = c.DefaultQuery("order", raw.Order)
	raw.Q = c.Query("q")
	var err error
	if raw.Limit, err = queryInt(c, "limit", raw.Limit); err != nil {
		return listing.Raw{}, err
	}
	if raw.Offset, err = queryInt(c, "offset", raw.Offset); err != nil {
		return listing.Raw{}, err
	}
	return raw, nil
}

// listParams parses the admin list parameters of spec. On failure the
// error response is already written.
func listParams(c *gin.Context, spec listing.Spec) (listing.Params, bool) {
	raw, err := listRaw(c)
	if err != nil {
		badQuery(c, err)
		return listing.Params{}, false
	}
	p, err := listing.Parse(raw, spec, false)
	if err != nil {
		badQuery(c, err)
		return listing.Params{}, false
	}
	return p, true
}

// idFilter parses the id selector of PUT and DELETE requests.
func idFilter(c *gin.Context) (listing.Filter, bool) {
	f, err := listing.ParseFilter(c.DefaultQuery("id", listing.NoID))
	if err != nil {
		badQuery(c, err)
		return listing.Filter{}, false
	}
	return f, true
}

// singleID requires an eq.<id> selector.
func singleID(c *gin.Context) (string, bool) {
	f, ok := idFilter(c)
	if !ok {
		return "", false
	}
	if !f.IsSingle() {
		response.Abort(c, http.StatusBadRequest, "an id filter of the form eq.<id> is required", nil)
		return "", false
	}
	return f.Value(), true
}

func pathInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Abort(c, http.StatusBadRequest, name+" must be an integer", nil)
		return 0, false
	}
	return id, true
}

// pageQuery reads the limit/skip pair of the directory endpoints.
func pageQuery(c *gin.Context) (limit, skip int, ok bool) {
	var err error
	if limit, err = queryInt(c, "limit", listing.DefaultLimit); err != nil {
		badQuery(c, err)
		return 0, 0, false
	}
	if skip, err = queryInt(c, "skip", 0); err != nil {
		badQuery(c, err)
		return 0, 0, false
	}
	return limit, skip, true
}
