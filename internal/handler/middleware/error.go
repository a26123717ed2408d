package middleware

import (
	"io"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs public 5xx errors with their stack and renders the last
// one when the handler aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.ByType(gin.ErrorTypePublic).Last()
		var resp httperr.Response
		hasResp := false
		if last != nil {
			resp, hasResp = last.Meta.(httperr.Response)
		}
		if hasResp && resp.Status >= http.StatusInternalServerError {
			LoggerFrom(c).ErrorContext(c.Request.Context(), "request failed",
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackLines))
		}

		if c.Writer.Written() {
			return
		}
		if hasResp {
			c.JSON(resp.Status, resp)
			return
		}
		if c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			writeInternal(c)
		}
	}
}

// Recovery turns a panic into a logged 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		LoggerFrom(c).ErrorContext(c.Request.Context(), "recovered from panic", "panic", recovered)
		writeInternal(c)
		c.Abort()
	})
}

func writeInternal(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(http.StatusInternalServerError, resp)
}
