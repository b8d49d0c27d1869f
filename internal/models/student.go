package models

import (
	"strings"
	"time"
)

// EnrollmentStatus is the matriculation standing of a student.
type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled    EnrollmentStatus = "Matriculado"
	EnrollmentStatusPreEnrolled EnrollmentStatus = "Pre-matriculado"
	EnrollmentStatusTransferred EnrollmentStatus = "Trasladado"
	EnrollmentStatusWithdrawn   EnrollmentStatus = "Retirado"
	EnrollmentStatusPending     EnrollmentStatus = "Pendiente"
)

// EnrollmentStatuses lists every status recognised by the search box.
var EnrollmentStatuses = []EnrollmentStatus{
	EnrollmentStatusEnrolled,
	EnrollmentStatusPreEnrolled,
	EnrollmentStatusWithdrawn,
	EnrollmentStatusTransferred,
	EnrollmentStatusPending,
}

// EnrollmentType describes how the student entered the current year.
type EnrollmentType string

const (
	EnrollmentTypeContinuing EnrollmentType = "Continuidad"
	EnrollmentTypeNew        EnrollmentType = "Ingresante"
	EnrollmentTypeTransfer   EnrollmentType = "Traslado"
)

// EnrollmentTypes lists every type recognised by the search box.
var EnrollmentTypes = []EnrollmentType{
	EnrollmentTypeContinuing,
	EnrollmentTypeNew,
	EnrollmentTypeTransfer,
}

// Valid returns true when the type is a supported value.
func (t EnrollmentType) Valid() bool {
	for _, known := range EnrollmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EnrollmentCondition is the academic condition carried into the year.
type EnrollmentCondition string

const (
	EnrollmentConditionPromoted EnrollmentCondition = "Promovido"
	EnrollmentConditionRepeater EnrollmentCondition = "Repitente"
)

// Valid returns true when the condition is a supported value.
func (c EnrollmentCondition) Valid() bool {
	return c == EnrollmentConditionPromoted || c == EnrollmentConditionRepeater
}

// LookupEnrollmentStatus matches a status case-insensitively.
func LookupEnrollmentStatus(raw string) (EnrollmentStatus, bool) {
	for _, s := range EnrollmentStatuses {
		if strings.EqualFold(string(s), raw) {
			return s, true
		}
	}
	return "", false
}

// LookupEnrollmentType matches a type case-insensitively.
func LookupEnrollmentType(raw string) (EnrollmentType, bool) {
	for _, t := range EnrollmentTypes {
		if strings.EqualFold(string(t), raw) {
			return t, true
		}
	}
	return "", false
}

// Student represents a learner registered in the institution.
type Student struct {
	DocumentNumber       string              `json:"documentNumber"`
	StudentCode          string              `json:"studentCode"`
	PaternalLastName     string              `json:"paternalLastName"`
	MaternalLastName     string              `json:"maternalLastName"`
	Names                string              `json:"names"`
	FullName             string              `json:"fullName"`
	Gender               string              `json:"gender"`
	BirthDate            string              `json:"birthDate"`
	Grade                string              `json:"grade"`
	Section              string              `json:"section"`
	Shift                Shift               `json:"shift,omitempty"`
	EnrollmentStatus     EnrollmentStatus    `json:"enrollmentStatus"`
	EnrollmentType       EnrollmentType      `json:"enrollmentType"`
	Condition            EnrollmentCondition `json:"condition"`
	Exonerations         []Exoneration       `json:"exonerations,omitempty"`
	Status               UserStatus          `json:"status"`
	Sede                 string              `json:"sede"`
	LastLogin            *time.Time          `json:"lastLogin"`
	AvatarURL            string              `json:"avatarUrl"`
	TutorIDs             []string            `json:"tutorIds"`
	Tags                 []string            `json:"tags"`
	AverageGrade         float64             `json:"averageGrade"`
	AttendancePercentage float64             `json:"attendancePercentage"`
	TardinessCount       int                 `json:"tardinessCount"`
	BehaviorIncidents    int                 `json:"behaviorIncidents"`
	AcademicRisk         bool                `json:"academicRisk"`
}

// Initials returns the two-letter avatar fallback.
func (s Student) Initials() string {
	var b strings.Builder
	for _, part := range []string{s.PaternalLastName, s.Names} {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// ComposeFullName builds the "PATERNAL MATERNAL, NAMES" form used everywhere.
func ComposeFullName(paternal, maternal, names string) string {
	return strings.TrimSpace(paternal+" "+maternal) + ", " + names
}

// UserStatusForEnrollment derives the account status from the enrollment status.
func UserStatusForEnrollment(status EnrollmentStatus) UserStatus {
	switch status {
	case EnrollmentStatusEnrolled:
		return UserStatusActive
	case EnrollmentStatusPending, EnrollmentStatusPreEnrolled:
		return UserStatusPending
	default:
		return UserStatusInactive
	}
}
