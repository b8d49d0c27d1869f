package dto

import "github.com/noah-isme/matricula-dashboard-api/internal/models"

// EnrollmentQuery is the derived enrollment view request. Tags are the raw
// values of the committed tag set, in commit order.
type EnrollmentQuery struct {
	KPI  models.KPI
	Tags []string
	Page int
}

// EnrollmentViewResponse is one page of the derived enrollment view.
type EnrollmentViewResponse struct {
	Students []models.Student   `json:"students"`
	Tags     []models.SearchTag `json:"tags"`
	KPI      models.KPI         `json:"kpi,omitempty"`
	KPIs     []models.KPICount  `json:"kpis"`
}

// Tag command actions.
const (
	TagActionAdd       = "add"
	TagActionRemove    = "remove"
	TagActionBackspace = "backspace"
)

// TagCommandRequest edits the tag set held by the client.
type TagCommandRequest struct {
	Tags   []string `json:"tags"`
	Action string   `json:"action" validate:"required,oneof=add remove backspace"`
	Input  string   `json:"input"`
}

// TagCommandResponse returns the new tag set.
type TagCommandResponse struct {
	Tags  []models.SearchTag `json:"tags"`
	Added *models.SearchTag  `json:"added,omitempty"`
}

// SectionChangeRequest moves a student within the catalog.
type SectionChangeRequest struct {
	Grade   string       `json:"grade"`
	Section string       `json:"section" validate:"required"`
	Shift   models.Shift `json:"shift" validate:"omitempty,shift"`
}

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}
