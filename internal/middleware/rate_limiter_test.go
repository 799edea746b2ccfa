package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/login", LoginRateLimiter(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	attempt := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, attempt("10.0.0.1"), "attempt %d should pass", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, attempt("10.0.0.1"))

	// Other IPs keep their own windows.
	assert.Equal(t, http.StatusOK, attempt("10.0.0.2"))
}
