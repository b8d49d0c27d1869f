package models

// PopulationFocus selects whose attendance is summarised.
type PopulationFocus string

const (
	PopulationStudents PopulationFocus = "Estudiantes"
	PopulationTeachers PopulationFocus = "Docentes"
)

// TimeRange is the reporting window of the attendance dashboard.
type TimeRange string

const (
	TimeRangeDay   TimeRange = "Hoy"
	TimeRangeWeek  TimeRange = "Semana"
	TimeRangeMonth TimeRange = "Mes"
	TimeRangeYear  TimeRange = "Año"
)

// LevelFilter narrows attendance by level; "Todos" disables it.
type LevelFilter string

const (
	LevelAll       LevelFilter = "Todos"
	LevelInitial   LevelFilter = "Inicial"
	LevelPrimary   LevelFilter = "Primaria"
	LevelSecondary LevelFilter = "Secundaria"
)

// AllOption disables grade and section filters.
const AllOption = "all"

// AttendanceFilters is the attendance control bar state.
type AttendanceFilters struct {
	PopulationFocus PopulationFocus `json:"populationFocus"`
	TimeRange       TimeRange       `json:"timeRange"`
	Level           LevelFilter     `json:"level"`
	Grade           string          `json:"grade"`
	Section         string          `json:"section"`
}

// DefaultAttendanceFilters mirrors the dashboard's initial control bar.
func DefaultAttendanceFilters() AttendanceFilters {
	return AttendanceFilters{
		PopulationFocus: PopulationStudents,
		TimeRange:       TimeRangeWeek,
		Level:           LevelAll,
		Grade:           AllOption,
		Section:         AllOption,
	}
}

// WithLevel changes the level and resets grade and section.
func (f AttendanceFilters) WithLevel(level LevelFilter) AttendanceFilters {
	f.Level = level
	f.Grade = AllOption
	f.Section = AllOption
	return f
}

// WithGrade changes the grade and resets the section.
func (f AttendanceFilters) WithGrade(grade string) AttendanceFilters {
	f.Grade = grade
	f.Section = AllOption
	return f
}

// WithSection changes the section.
func (f AttendanceFilters) WithSection(section string) AttendanceFilters {
	f.Section = section
	return f
}

// AttendanceKPI is one attendance KPI tile.
type AttendanceKPI struct {
	Title  string `json:"title"`
	Value  int    `json:"value"`
	Change int    `json:"change"`
}

// AttendanceChartPoint is one weekday bar in percent.
type AttendanceChartPoint struct {
	Name       string  `json:"name"`
	Attendance float64 `json:"asistencia"`
	Lateness   float64 `json:"tardanzas"`
	Absence    float64 `json:"faltas"`
}

// AlertSeverity grades attendance alerts.
type AlertSeverity string

const (
	AlertCritical AlertSeverity = "critical"
	AlertWarning  AlertSeverity = "warning"
	AlertInfo     AlertSeverity = "info"
)

// AttendanceAlert is a notable attendance condition.
type AttendanceAlert struct {
	Type        AlertSeverity `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Time        string        `json:"time"`
}

// DataQualityWarning flags a generated value that had to be corrected.
type DataQualityWarning struct {
	Field    string  `json:"field"`
	Raw      float64 `json:"raw"`
	Adjusted float64 `json:"adjusted"`
	Message  string  `json:"message"`
}

// AttendanceSnapshot is the attendance dashboard payload.
type AttendanceSnapshot struct {
	Filters    AttendanceFilters      `json:"filters"`
	Population int                    `json:"population"`
	KPIs       []AttendanceKPI        `json:"kpis"`
	Chart      []AttendanceChartPoint `json:"chartData"`
	Alerts     []AttendanceAlert      `json:"alerts"`
	Warnings   []DataQualityWarning   `json:"warnings,omitempty"`
}
