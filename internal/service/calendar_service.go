package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/search"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

// CalendarService manages academic calendar events.
type CalendarService struct {
	roster    rosterStore
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewCalendarService constructs the service.
func NewCalendarService(roster rosterStore, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{roster: roster, validator: ensureValidator(validate), logger: logger, newID: uuid.NewString}
}

func monthStart(year, month int) (time.Time, error) {
	if year < 1900 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "year and month are out of range")
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

func monthPrefix(t time.Time) string {
	return t.Format("2006-01")
}

func (s *CalendarService) inMonth(start time.Time) []models.CalendarEvent {
	prefix := monthPrefix(start) + "-"
	out := make([]models.CalendarEvent, 0)
	for _, e := range s.roster.Snapshot().Events {
		if strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// ListMonth returns the events of a month ordered by date then title.
func (s *CalendarService) ListMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error) {
	start, err := monthStart(year, month)
	if err != nil {
		return nil, err
	}
	events := s.inMonth(start)
	search.SortByText(events, func(e models.CalendarEvent) string { return e.Title })
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events, nil
}

// ListDay returns the events on date ordered by title.
func (s *CalendarService) ListDay(ctx context.Context, date string) ([]models.CalendarEvent, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must use the YYYY-MM-DD format")
	}
	out := make([]models.CalendarEvent, 0)
	for _, e := range s.roster.Snapshot().Events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	search.SortByText(out, func(e models.CalendarEvent) string { return e.Title })
	return out, nil
}

// Month builds the month grid with event counts per day.
func (s *CalendarService) Month(ctx context.Context, year, month int) (*models.CalendarMonth, error) {
	start, err := monthStart(year, month)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, e := range s.inMonth(start) {
		counts[e.Date]++
	}
	end := start.AddDate(0, 1, 0)
	days := make([]models.CalendarDay, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(models.DateLayout)
		days = append(days, models.CalendarDay{Date: key, EventCount: counts[key]})
	}
	return &models.CalendarMonth{
		Year:     year,
		Month:    month,
		Previous: monthPrefix(start.AddDate(0, -1, 0)),
		Next:     monthPrefix(end),
		Days:     days,
	}, nil
}

// Create validates and stores a new event.
func (s *CalendarService) Create(ctx context.Context, req dto.CreateEventRequest) (*models.CalendarEvent, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event")
	}
	event := models.CalendarEvent{
		ID:       s.newID(),
		Title:    req.Title,
		Category: req.Category,
		Date:     req.Date,
	}
	if _, err := s.roster.Update(func(st store.State) (store.State, error) {
		return store.AddEvent(st, event), nil
	}); err != nil {
		return nil, translateDomainError(err)
	}
	s.logger.Info("calendar event created", zap.String("event_id", event.ID), zap.String("date", event.Date))
	return &event, nil
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	if _, err := s.roster.Update(func(st store.State) (store.State, error) {
		return store.RemoveEvent(st, id)
	}); err != nil {
		return translateDomainError(err)
	}
	return nil
}

// ParseMonth reads "YYYY-MM" month references.
func ParseMonth(ref string) (int, int, error) {
	t, err := time.Parse("2006-01", ref)
	if err != nil {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid month reference %q", ref))
	}
	return t.Year(), int(t.Month()), nil
}
