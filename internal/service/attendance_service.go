package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/attendance"
	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

type snapshotGenerator interface {
	Snapshot(filters models.AttendanceFilters, population int) models.AttendanceSnapshot
}

type attendanceReporter interface {
	AttendanceReport(snap models.AttendanceSnapshot, generated time.Time) ([]byte, error)
}

// AttendanceConfig tunes the attendance dashboard.
type AttendanceConfig struct {
	FetchDelay time.Duration
	CacheTTL   time.Duration
}

// AttendanceService serves attendance dashboard snapshots.
type AttendanceService struct {
	roster    rosterStore
	catalog   models.GradeCatalog
	generator snapshotGenerator
	cache     *CacheService
	fetcher   *attendance.Fetcher
	reports   attendanceReporter
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       AttendanceConfig
	now       func() time.Time
}

// NewAttendanceService constructs the service.
func NewAttendanceService(roster rosterStore, catalog models.GradeCatalog, generator snapshotGenerator, cache *CacheService, reports attendanceReporter, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, cfg AttendanceConfig) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	svc := &AttendanceService{
		roster:    roster,
		catalog:   catalog,
		generator: generator,
		cache:     cache,
		reports:   reports,
		validator: ensureValidator(validate),
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
	svc.fetcher = attendance.NewFetcher(cfg.FetchDelay, svc.load, attendance.WithSupersededHook(metrics.RecordSupersededFetch))
	return svc
}

func attendanceCacheKey(f models.AttendanceFilters) string {
	return CacheKey("attendance", string(f.PopulationFocus), string(f.TimeRange), string(f.Level), f.Grade, f.Section)
}

func (s *AttendanceService) load(ctx context.Context, filters models.AttendanceFilters) (models.AttendanceSnapshot, error) {
	snap, _, err := Remember(ctx, s.cache, attendanceCacheKey(filters), s.cfg.CacheTTL, func(context.Context) (models.AttendanceSnapshot, error) {
		return s.generator.Snapshot(filters, s.population(filters)), nil
	})
	return snap, err
}

// RosterChanged drops cached snapshots so populations follow roster edits.
func (s *AttendanceService) RosterChanged(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, CacheKey("attendance", "*"))
}

func (s *AttendanceService) population(f models.AttendanceFilters) int {
	state := s.roster.Snapshot()
	if f.PopulationFocus == models.PopulationTeachers {
		return len(state.Staff)
	}
	return len(state.Students)
}

func (s *AttendanceService) filters(q dto.AttendanceQuery) (models.AttendanceFilters, error) {
	if err := s.validator.Struct(q); err != nil {
		return models.AttendanceFilters{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance filters")
	}
	f := q.Filters()
	if f.Grade != models.AllOption {
		_, known := s.catalog.Sections(f.Grade)
		if f.Level != models.LevelAll {
			known = s.catalog.LevelHasGrade(f.Level, f.Grade)
		}
		if !known {
			return f, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("grade %q is not offered in %s", f.Grade, f.Level))
		}
	}
	if f.Section != models.AllOption {
		if f.Grade == models.AllOption || !s.catalog.HasSection(f.Grade, f.Section) {
			return f, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("section %q is not offered for grade %q", f.Section, f.Grade))
		}
	}
	return f, nil
}

// Dashboard returns a snapshot for the filters. A newer request carrying the
// same session key supersedes an older one still waiting.
func (s *AttendanceService) Dashboard(ctx context.Context, session string, q dto.AttendanceQuery) (*models.AttendanceSnapshot, error) {
	f, err := s.filters(q)
	if err != nil {
		return nil, err
	}
	snap, err := s.fetcher.Fetch(ctx, session, f)
	if err != nil {
		if errors.Is(err, attendance.ErrSuperseded) {
			s.logger.Debug("attendance fetch superseded", zap.String("session", session))
			return nil, appErrors.Clone(appErrors.ErrSuperseded, "a newer attendance request replaced this one")
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "attendance request cancelled")
		}
		return nil, translateDomainError(err)
	}
	return &snap, nil
}

// Report renders the snapshot for the filters as a PDF.
func (s *AttendanceService) Report(ctx context.Context, q dto.AttendanceQuery) ([]byte, error) {
	f, err := s.filters(q)
	if err != nil {
		return nil, err
	}
	snap, err := s.load(ctx, f)
	if err != nil {
		return nil, translateDomainError(err)
	}
	payload, err := s.reports.AttendanceReport(snap, s.now())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render attendance report")
	}
	s.metrics.RecordDocument("attendance_report")
	return payload, nil
}
