package api

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses a UUID path parameter and aborts with 400 when malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetCallerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingCaller, "Invalid X-Sharer-User-Id header", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortBind(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
