package dto

import "github.com/noah-isme/matricula-dashboard-api/internal/models"

// CreateEventRequest adds a calendar event.
type CreateEventRequest struct {
	Title    string               `json:"title" validate:"required,max=200"`
	Category models.EventCategory `json:"category" validate:"required,calendar_category"`
	Date     string               `json:"date" validate:"required,datetime=2006-01-02"`
}
