//go:build unit || e2e

package httptest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders works for both recorders (rec.Header()) and live responses (resp.Header).
func AssertHeaders(t *testing.T, header http.Header, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, header.Get(k), "header %s mismatch", k)
	}
}
