package position_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-empdir/internal/position"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePositionService struct {
	GetAllFn func(ctx context.Context) ([]position.PositionResponse, error)
}

func (f *fakePositionService) GetAll(ctx context.Context) ([]position.PositionResponse, error) {
	return f.GetAllFn(ctx)
}

func setupPositionRouter(svc position.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := position.NewHandler(svc, zap.NewNop())
	position.RegisterRoutes(r.Group("/api"), h)
	return r
}

func TestPositionHandler_GetAll(t *testing.T) {
	t.Run("returns id/title pairs", func(t *testing.T) {
		svc := &fakePositionService{
			GetAllFn: func(ctx context.Context) ([]position.PositionResponse, error) {
				return []position.PositionResponse{
					{ID: uuid.New().String(), Title: "Engineer"},
					{ID: uuid.New().String(), Title: "Manager"},
				}, nil
			},
		}
		r := setupPositionRouter(svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/positions", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Engineer"`)
		assert.Contains(t, w.Body.String(), `"title":"Manager"`)
	})

	t.Run("store failure is a 500 with the envelope", func(t *testing.T) {
		svc := &fakePositionService{
			GetAllFn: func(ctx context.Context) ([]position.PositionResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		r := setupPositionRouter(svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/positions", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
		// Raw driver errors must never reach the client.
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
