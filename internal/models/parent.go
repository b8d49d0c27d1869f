package models

import "time"

// ParentRelation is the relationship of a tutor to the student.
type ParentRelation string

const (
	ParentRelationFather   ParentRelation = "Padre"
	ParentRelationMother   ParentRelation = "Madre"
	ParentRelationGuardian ParentRelation = "Apoderado"
)

// ParentTutor is a parent or legal guardian of one or more students.
type ParentTutor struct {
	DNI         string         `json:"dni"`
	Name        string         `json:"name"`
	Relation    ParentRelation `json:"relation"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	StudentDNIs []string       `json:"studentDnis"`
	Status      UserStatus     `json:"status"`
	Sede        string         `json:"sede"`
	LastLogin   *time.Time     `json:"lastLogin"`
	AvatarURL   string         `json:"avatarUrl"`
}
