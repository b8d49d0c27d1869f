package models

// Shift is the school day shift.
type Shift string

const (
	ShiftMorning   Shift = "Mañana"
	ShiftAfternoon Shift = "Tarde"
)

// Valid returns true when the shift is a supported value.
func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// Exoneration is a course a student is exempted from.
type Exoneration string

const (
	ExonerationReligion Exoneration = "Religión"
	ExonerationPE       Exoneration = "Educación Física"
)

// Valid returns true when the exoneration is a supported value.
func (e Exoneration) Valid() bool {
	return e == ExonerationReligion || e == ExonerationPE
}

// EnrollmentIdentification is the first wizard step payload.
type EnrollmentIdentification struct {
	Query            string `json:"query"`
	DocumentNumber   string `json:"documentNumber"`
	PaternalLastName string `json:"paternalLastName,omitempty"`
	MaternalLastName string `json:"maternalLastName,omitempty"`
	Names            string `json:"names,omitempty"`
	Gender           string `json:"gender,omitempty"`
	BirthDate        string `json:"birthDate,omitempty"`
	Existing         bool   `json:"existing"`
}

// EnrollmentPlacement is the second wizard step payload.
type EnrollmentPlacement struct {
	Level        LevelFilter         `json:"level"`
	Grade        string              `json:"grade"`
	Section      string              `json:"section"`
	Shift        Shift               `json:"shift"`
	Type         EnrollmentType      `json:"type"`
	Condition    EnrollmentCondition `json:"condition"`
	Exonerations []Exoneration       `json:"exonerations,omitempty"`
}

// EnrollmentSummary is the confirmation step read-out.
type EnrollmentSummary struct {
	Student   string              `json:"student"`
	DNI       string              `json:"dni"`
	Placement string              `json:"placement"`
	Condition EnrollmentCondition `json:"condition"`
	Type      EnrollmentType      `json:"type"`
}

// SectionChange moves a student to another section or shift.
type SectionChange struct {
	Grade   string `json:"grade"`
	Section string `json:"section"`
	Shift   Shift  `json:"shift"`
}
