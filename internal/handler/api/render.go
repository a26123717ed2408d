package api

import (
	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// render maps a view to its response DTO and writes it.
func render[V, R any](c *gin.Context, status int, view V, toResponse func(V) (R, error)) {
	res, err := toResponse(view)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(status, res)
}
