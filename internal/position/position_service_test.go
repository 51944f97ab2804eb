package position_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-empdir/internal/position"
	positionMock "go-empdir/internal/position/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPositionService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss reads store and fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := position.NewService(repo, rdb)

		positions := []position.Position{
			{ID: uuid.New(), Title: "Engineer"},
			{ID: uuid.New(), Title: "Manager"},
		}
		expected := []position.PositionResponse{
			{ID: positions[0].ID.String(), Title: "Engineer"},
			{ID: positions[1].ID.String(), Title: "Manager"},
		}
		cached, _ := json.Marshal(expected)

		redisMock.ExpectGet(position.PositionAllKey).RedisNil()
		repo.EXPECT().FindAll(ctx).Return(positions, nil)
		redisMock.ExpectSet(position.PositionAllKey, cached, 30*time.Minute).SetVal("OK")

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := position.NewService(repo, rdb)

		expected := []position.PositionResponse{{ID: uuid.New().String(), Title: "Engineer"}}
		cached, _ := json.Marshal(expected)

		// No repo expectation: the store must not be queried.
		redisMock.ExpectGet(position.PositionAllKey).SetVal(string(cached))

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("works without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := positionMock.NewMockRepository(ctrl)
		svc := position.NewService(repo, nil)

		repo.EXPECT().FindAll(ctx).Return([]position.Position{}, nil)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
