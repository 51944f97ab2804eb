package position_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-empdir/internal/position"
	positionMock "go-empdir/internal/position/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestImporter_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts one row per title in feed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		srv := feedServer(t, http.StatusOK, `{"positions":["Engineer","Manager"]}`)

		repo.EXPECT().
			CreateAll(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, positions []position.Position) error {
				if assert.Len(t, positions, 2) {
					assert.Equal(t, "Engineer", positions[0].Title)
					assert.Equal(t, "Manager", positions[1].Title)
				}
				return nil
			})

		importer := position.NewImporter(repo, srv.Client(), nil)
		rows, err := importer.Import(ctx, srv.URL)

		assert.NoError(t, err)
		assert.Equal(t, 2, rows)
	})

	t.Run("missing positions key aborts with zero rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		srv := feedServer(t, http.StatusOK, `{"jobs":["Engineer"]}`)

		// No CreateAll expectation: nothing may be inserted.
		importer := position.NewImporter(repo, srv.Client(), nil)
		rows, err := importer.Import(ctx, srv.URL)

		assert.ErrorIs(t, err, position.ErrFeedMalformed)
		assert.Zero(t, rows)
	})

	t.Run("non-200 feed aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		srv := feedServer(t, http.StatusInternalServerError, "")

		importer := position.NewImporter(repo, srv.Client(), nil)
		rows, err := importer.Import(ctx, srv.URL)

		assert.ErrorIs(t, err, position.ErrFeedUnavailable)
		assert.Zero(t, rows)
	})

	t.Run("invalid json aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		srv := feedServer(t, http.StatusOK, `{"positions":`)

		importer := position.NewImporter(repo, srv.Client(), nil)
		_, err := importer.Import(ctx, srv.URL)

		assert.ErrorIs(t, err, position.ErrFeedMalformed)
	})

	t.Run("successful import invalidates the list cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		srv := feedServer(t, http.StatusOK, `{"positions":["Engineer"]}`)

		repo.EXPECT().CreateAll(ctx, gomock.Any()).Return(nil)
		redisMock.ExpectDel(position.PositionAllKey).SetVal(1)

		importer := position.NewImporter(repo, srv.Client(), rdb)
		rows, err := importer.Import(ctx, srv.URL)

		assert.NoError(t, err)
		assert.Equal(t, 1, rows)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
