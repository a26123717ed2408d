//go:build unit || e2e

package httptest

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

// AssertLocation checks a create response points at base/<id>.
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, base string, id any) {
	t.Helper()
	assert.Equal(t, fmt.Sprintf("%s/%v", base, id), w.Header().Get("Location"))
}
