//go:build unit

package api_test

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"shareit/internal/handler/middleware"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine
}

// callerGroup mounts a group guarded by the caller header check.
func callerGroup(engine *gin.Engine, path string) *gin.RouterGroup {
	g := engine.Group(path)
	g.Use(middleware.RequireCaller())
	return g
}
