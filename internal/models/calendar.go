package models

import "time"

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

// EventCategory classifies academic calendar entries.
type EventCategory string

const (
	EventCategoryExam       EventCategory = "Examen"
	EventCategoryHoliday    EventCategory = "Feriado"
	EventCategoryMeeting    EventCategory = "Reunión"
	EventCategoryActivity   EventCategory = "Actividad"
	EventCategoryUGEL       EventCategory = "UGEL"
	EventCategoryCivic      EventCategory = "Cívico"
	EventCategoryManagement EventCategory = "Gestión"
)

// EventCategories lists the closed category set.
var EventCategories = []EventCategory{
	EventCategoryActivity,
	EventCategoryExam,
	EventCategoryMeeting,
	EventCategoryHoliday,
	EventCategoryUGEL,
	EventCategoryCivic,
	EventCategoryManagement,
}

// Valid returns true when the category is a supported value.
func (c EventCategory) Valid() bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CalendarEvent represents an academic calendar entry. ID is assigned once at creation.
type CalendarEvent struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Category EventCategory `json:"category"`
	Date     string        `json:"date"`
}

// Day parses Date; invalid dates yield the zero time.
func (e CalendarEvent) Day() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date       string `json:"date"`
	EventCount int    `json:"eventCount"`
}

// CalendarMonth is the month view with navigation references.
type CalendarMonth struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Previous string        `json:"previous"`
	Next     string        `json:"next"`
	Days     []CalendarDay `json:"days"`
}
