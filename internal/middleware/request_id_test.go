package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-empdir/internal/middleware"
	"go-empdir/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("inbound id is propagated and echoed", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RequestID())

		var gotFromCtx string
		r.GET("/", func(c *gin.Context) {
			gotFromCtx = contextutil.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "rid-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-123", gotFromCtx)
		assert.Equal(t, "rid-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("id is generated when absent", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
