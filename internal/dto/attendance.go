package dto

import "github.com/noah-isme/matricula-dashboard-api/internal/models"

// AttendanceQuery is the attendance control bar.
type AttendanceQuery struct {
	PopulationFocus models.PopulationFocus `form:"populationFocus" validate:"omitempty,oneof=Estudiantes Docentes"`
	TimeRange       models.TimeRange       `form:"timeRange" validate:"omitempty,oneof=Hoy Semana Mes Año"`
	Level           models.LevelFilter     `form:"level" validate:"omitempty,oneof=Todos Inicial Primaria Secundaria"`
	Grade           string                 `form:"grade"`
	Section         string                 `form:"section"`
}

// Filters resolves the query onto the dashboard defaults.
func (q AttendanceQuery) Filters() models.AttendanceFilters {
	f := models.DefaultAttendanceFilters()
	if q.PopulationFocus != "" {
		f.PopulationFocus = q.PopulationFocus
	}
	if q.TimeRange != "" {
		f.TimeRange = q.TimeRange
	}
	if q.Level != "" {
		f = f.WithLevel(q.Level)
	}
	if q.Grade != "" {
		f = f.WithGrade(q.Grade)
	}
	if q.Section != "" {
		f = f.WithSection(q.Section)
	}
	return f
}
