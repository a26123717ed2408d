//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(middleware.RequestLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
	r.Use(middleware.ErrorHandler())
	r.GET("/internal", func(c *gin.Context) {
		httperr.AbortWithKind(c, errs.Wrap(errs.New("connection reset"), "list bookings"))
	})
	r.GET("/missing", func(c *gin.Context) {
		httperr.AbortWithKind(c, errs.NotFound("booking not found"))
	})
	r.GET("/deferred", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "booking status was changed concurrently"
		_ = c.Error(&gin.Error{Err: errs.New("cas lost"), Type: gin.ErrorTypePublic, Meta: resp})
		c.Abort()
	})
	r.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("internal error is hidden and logged", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())

		var first map[string]any
		require.NoError(t, json.NewDecoder(&buf).Decode(&first))
		assert.Equal(t, "request failed", first["msg"])
		assert.Contains(t, first["error"], "connection reset")
		assert.NotEmpty(t, first["stack"])
	})

	t.Run("business error is rendered without a log line", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"booking not found"}}`, w.Body.String())

		var first map[string]any
		require.NoError(t, json.NewDecoder(&buf).Decode(&first))
		assert.Equal(t, "request handled", first["msg"])
	})

	t.Run("recorded public error is rendered when nothing was written", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deferred", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"booking status was changed concurrently"}}`, w.Body.String())
	})

	t.Run("bodiless status passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
