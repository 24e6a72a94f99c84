package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// TotalHeader carries the out-of-band row count of list responses.
const TotalHeader = "Content-Range"

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Error     any       `json:"error,omitempty"`
}

func Error(ctx *gin.Context, status int, message string, err any) ErrorResponse {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return ErrorResponse{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// Abort writes the error envelope and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string, err any) {
	ctx.AbortWithStatusJSON(status, Error(ctx, status, message, err))
}

// List writes items as a bare JSON array and the total as a header.
func List[T any](ctx *gin.Context, items []T, total int) {
	if items == nil {
		items = []T{}
	}
	ctx.Header(TotalHeader, strconv.Itoa(total))
	ctx.JSON(http.StatusOK, items)
}

func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}
