package position

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrFeedUnavailable = errors.New("positions feed unavailable")
	ErrFeedMalformed   = errors.New("positions feed response missing \"positions\" field")
)

// feedDocument is the wire shape of the external positions feed.
type feedDocument struct {
	Positions []string `json:"positions"`
}

// Importer populates the positions table from the external feed. It is a
// one-shot migration-time step, not part of the request path: any fetch
// or decode failure aborts with zero rows inserted.
type Importer struct {
	repo   Repository
	client *http.Client
	rdb    *redis.Client
	logger *zap.Logger
}

func NewImporter(repo Repository, client *http.Client, rdb *redis.Client, logger ...*zap.Logger) *Importer {
	l := zap.L().Named("position.importer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.importer")
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Importer{repo: repo, client: client, rdb: rdb, logger: l}
}

// Import fetches the feed and inserts one row per title, in feed order.
// Returns the number of rows inserted.
func (i *Importer) Import(ctx context.Context, feedURL string) (int, error) {
	i.logger.Info("position import started", zap.String("feed_url", feedURL))

	titles, err := i.fetchTitles(ctx, feedURL)
	if err != nil {
		i.logger.Error("position import fetch failed", zap.Error(err))
		return 0, err
	}

	positions := make([]Position, len(titles))
	for idx, title := range titles {
		positions[idx] = Position{
			ID:    uuid.New(),
			Title: title,
		}
	}

	if err := i.repo.CreateAll(ctx, positions); err != nil {
		i.logger.Error("position import persist failed", zap.Error(err))
		return 0, err
	}

	if i.rdb != nil {
		if err := i.rdb.Del(ctx, PositionAllKey).Err(); err != nil {
			i.logger.Warn("position import cache invalidation failed",
				zap.String("key", PositionAllKey),
				zap.Error(err),
			)
		}
	}

	i.logger.Info("position import success", zap.Int("rows", len(positions)))
	return len(positions), nil
}

func (i *Importer) fetchTitles(ctx context.Context, feedURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	var doc feedDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
	}
	if doc.Positions == nil {
		return nil, ErrFeedMalformed
	}

	return doc.Positions, nil
}
