package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-empdir/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error passes through", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already exists", http.StatusConflict)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "already exists", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		inner := apperror.New(apperror.CodeNotFound, "gone", http.StatusNotFound)
		err := fmt.Errorf("loading record: %w", inner)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown error becomes an opaque 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq:")
	})
}

func TestWrap(t *testing.T) {
	inner := errors.New("driver failure")
	err := apperror.Wrap(inner, apperror.CodeInternalError, "store call failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "store call failed")

	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))
}
