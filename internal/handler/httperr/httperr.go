package httperr

import (
	"errors"
	"net/http"

	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind derives the status from the error kind. Business errors
// expose their message; anything else is reported as an internal error.
func AbortWithKind(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}

	violations := Violations(err)
	var detail any
	if len(violations) > 1 {
		detail = violations
	}
	msg := err.Error()
	if len(violations) > 0 {
		msg = violations[0]
	}
	AbortWithError(c, status, err, msg, detail)
}

func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Violations lists the messages of a joined error, or nil for a single one.
func Violations(err error) []string {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return nil
	}
	inner := joined.Unwrap()
	out := make([]string, 0, len(inner))
	for _, e := range inner {
		out = append(out, e.Error())
	}
	return out
}
