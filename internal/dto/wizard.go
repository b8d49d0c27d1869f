package dto

import "github.com/noah-isme/matricula-dashboard-api/internal/models"

// IdentificationRequest is the first wizard step. Query is a DNI or a
// student code; the personal fields are only needed for a new student.
type IdentificationRequest struct {
	Query            string `json:"query" validate:"required"`
	PaternalLastName string `json:"paternalLastName"`
	MaternalLastName string `json:"maternalLastName"`
	Names            string `json:"names"`
	Gender           string `json:"gender" validate:"omitempty,oneof=Hombre Mujer"`
	BirthDate        string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// PlacementRequest is the second wizard step.
type PlacementRequest struct {
	Level        models.LevelFilter         `json:"level" validate:"required,oneof=Inicial Primaria Secundaria"`
	Grade        string                     `json:"grade" validate:"required"`
	Section      string                     `json:"section" validate:"required"`
	Shift        models.Shift               `json:"shift" validate:"required,shift"`
	Type         models.EnrollmentType      `json:"type" validate:"required,enrollment_type"`
	Condition    models.EnrollmentCondition `json:"condition" validate:"required,enrollment_condition"`
	Exonerations []models.Exoneration       `json:"exonerations" validate:"omitempty,dive,exoneration"`
}

// WizardDocuments links the documents available once the wizard finishes.
type WizardDocuments struct {
	EnrollmentForm string `json:"enrollmentForm"`
	Certificate    string `json:"certificate"`
}
