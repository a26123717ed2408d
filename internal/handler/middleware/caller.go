package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallerHeader identifies the acting user. There is no authentication; the
// header is trusted as is.
const CallerHeader = "X-Sharer-User-Id"

const ctxCallerIDKey = "caller_id"

var errInvalidCaller = errs.Validation("Invalid X-Sharer-User-Id header")

func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(CallerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidCaller, errInvalidCaller.Error(), "header is missing")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidCaller), errInvalidCaller.Error(), "header must be a UUID")
			return
		}
		c.Set(ctxCallerIDKey, id)
		c.Next()
	}
}

func GetCallerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCallerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
