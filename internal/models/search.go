package models

// TagType classifies a parsed search tag.
type TagType string

const (
	TagTypeKeyword TagType = "keyword"
	TagTypeStatus  TagType = "status"
	TagTypeType    TagType = "type"
)

// SearchTag is a single filter criterion committed from the search box.
// Invalid tags are kept and flagged but never constrain the view.
type SearchTag struct {
	Value        string  `json:"value"`
	DisplayValue string  `json:"displayValue"`
	Type         TagType `json:"type"`
	Valid        bool    `json:"isValid"`
}

// KPI selectors double as enrollment view filters.
type KPI string

const (
	KPIEnrolled    KPI = "Matriculados"
	KPITransfers   KPI = "Traslados"
	KPIWithdrawals KPI = "Retirados"
	KPIVacancies   KPI = "Vacantes disp."
)

// KPIs lists the selectors in display order.
var KPIs = []KPI{KPIEnrolled, KPITransfers, KPIWithdrawals, KPIVacancies}

// Status returns the enrollment status a KPI filters on.
func (k KPI) Status() (EnrollmentStatus, bool) {
	switch k {
	case KPIEnrolled:
		return EnrollmentStatusEnrolled, true
	case KPITransfers:
		return EnrollmentStatusTransferred, true
	case KPIWithdrawals:
		return EnrollmentStatusWithdrawn, true
	case KPIVacancies:
		return EnrollmentStatusPending, true
	}
	return "", false
}

// KPICount is one enrollment KPI tile.
type KPICount struct {
	Title KPI `json:"title"`
	Value int `json:"value"`
}

// SortDirection is the column sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig is the active column sort of the user table.
type SortConfig struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Toggle applies a header click: the same column flips direction, a new
// column starts ascending.
func (s *SortConfig) Toggle(column string) SortConfig {
	if s != nil && s.Key == column {
		next := SortAsc
		if s.Direction == SortAsc {
			next = SortDesc
		}
		return SortConfig{Key: column, Direction: next}
	}
	return SortConfig{Key: column, Direction: SortAsc}
}

// UserFilter narrows the user directory.
type UserFilter struct {
	Search string
	Role   UserRole
	Status UserStatus
	Level  UserLevel
	Kind   PersonKind
}
