package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

type RoleLookup interface {
	GetRole(ctx context.Context, userID string) (entity.Role, error)
}

// RequireRole must run after Auth. The role is read from the store on every
// request so demotions apply immediately.
func RequireRole(users RoleLookup, allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "unauthorised", nil)
			return
		}
		role, err := users.GetRole(c.Request.Context(), id.UserID)
		switch {
		case errors.Is(err, repo.ErrNotFound):
			response.Abort(c, http.StatusUnauthorized, "unauthorised", nil)
			return
		case err != nil:
			response.Abort(c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		if !slices.Contains(allowed, role) {
			response.Abort(c, http.StatusForbidden, "Not authorized to perform requested action", nil)
			return
		}
		c.Next()
	}
}
