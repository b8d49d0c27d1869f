package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
)

const defaultActivityLimit = 50

// ActivityService keeps the recent activity feed.
type ActivityService struct {
	roster     rosterStore
	maxEntries int
	logger     *zap.Logger
	now        func() time.Time
}

// NewActivityService constructs the service.
func NewActivityService(roster rosterStore, maxEntries int, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &ActivityService{roster: roster, maxEntries: maxEntries, logger: logger, now: time.Now}
}

// Record appends an entry, dropping the oldest beyond the configured bound.
func (s *ActivityService) Record(ctx context.Context, entry models.ActivityLog) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	if _, err := s.roster.Update(func(st store.State) (store.State, error) {
		return store.AppendActivity(st, entry, s.maxEntries), nil
	}); err != nil {
		s.logger.Warn("activity not recorded", zap.String("action", entry.Action), zap.Error(err))
	}
}

// List returns up to limit entries, newest first.
func (s *ActivityService) List(ctx context.Context, limit int) []models.ActivityLog {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	logs := s.roster.Snapshot().Activity
	if limit > len(logs) {
		limit = len(logs)
	}
	out := make([]models.ActivityLog, 0, limit)
	for i := len(logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, logs[i])
	}
	return out
}
