package events

import (
	"context"
	"encoding/json"
	"time"

	"githubWebhookMonitor/internal/logger"
	"githubWebhookMonitor/internal/model"
	"githubWebhookMonitor/internal/utils"
	"githubWebhookMonitor/internal/webhook"

	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// Short TTL so the 15s polling UI never lags far behind; the
	// cache is also dropped on every save.
	recentCacheTTL = 5 * time.Second
)

type Service interface {
	Ingest(ctx context.Context, eventType, deliveryID string, body []byte) (*model.Event, error)
	Recent(ctx context.Context, limit int) ([]byte, error)
	Health(ctx context.Context) (int64, error)
}

type service struct {
	repo RepoInterface
	norm *webhook.Normalizer
}

func NewService(r RepoInterface, n *webhook.Normalizer) Service {
	return &service{repo: r, norm: n}
}

// Ingest treats normalize+save as one logical step: a delivery that
// fails normalization never reaches the store.
func (s *service) Ingest(ctx context.Context, eventType, deliveryID string, body []byte) (*model.Event, error) {
	e, err := s.norm.Normalize(eventType, deliveryID, body)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	if err := s.repo.InvalidateRecentJSON(ctx); err != nil {
		logger.Lg.Warn("cache invalidate failed", zap.Error(err))
	}
	return e, nil
}

// Recent returns the rendered recent-events JSON, newest first. The
// default window is served cache-aside from Redis; other limits go
// straight to the store.
func (s *service) Recent(ctx context.Context, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	cacheable := limit == DefaultLimit
	if cacheable {
		if data, hit, err := s.repo.GetRecentJSON(ctx); hit && err == nil {
			return data, nil
		} else if err != nil {
			logger.Lg.Warn("cache read failed", zap.Error(err))
		}
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	formatted := make([]model.FormattedEvent, 0, len(records))
	for i := range records {
		formatted = append(formatted, model.FormattedEvent{
			Message:   utils.FormatMessage(&records[i]),
			Timestamp: records[i].Timestamp.UTC().Format(time.RFC3339),
		})
	}
	jsonbytes, err := json.Marshal(formatted)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.repo.SetRecentJSON(ctx, jsonbytes, recentCacheTTL); err != nil {
			logger.Lg.Warn("cache store failed", zap.Error(err))
		}
	}
	return jsonbytes, nil
}

func (s *service) Health(ctx context.Context) (int64, error) {
	return s.repo.CountEvents(ctx)
}
