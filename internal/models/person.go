package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PersonKind discriminates the Person sum type.
type PersonKind string

const (
	PersonKindStudent PersonKind = "student"
	PersonKindStaff   PersonKind = "staff"
	PersonKindParent  PersonKind = "parent"
)

// Valid returns true when the kind is one of the supported variants.
func (k PersonKind) Valid() bool {
	switch k {
	case PersonKindStudent, PersonKindStaff, PersonKindParent:
		return true
	default:
		return false
	}
}

// UserStatus is the account standing shown in the user directory.
type UserStatus string

const (
	UserStatusActive    UserStatus = "Activo"
	UserStatusInactive  UserStatus = "Inactivo"
	UserStatusSuspended UserStatus = "Suspendido"
	UserStatusGraduated UserStatus = "Egresado"
	UserStatusPending   UserStatus = "Pendiente"
)

// Valid returns true when the status is a supported value.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended, UserStatusGraduated, UserStatusPending:
		return true
	default:
		return false
	}
}

// UserRole is the role column of the user directory.
type UserRole string

const (
	UserRoleDirector       UserRole = "Director"
	UserRoleAdministrative UserRole = "Administrativo"
	UserRoleTeacher        UserRole = "Docente"
	UserRoleSupport        UserRole = "Apoyo"
	UserRoleStudent        UserRole = "Estudiante"
	UserRoleParent         UserRole = "Apoderado"
)

// UserLevel is the educational level a person belongs to.
type UserLevel string

const (
	UserLevelInitial   UserLevel = "Inicial"
	UserLevelPrimary   UserLevel = "Primaria"
	UserLevelSecondary UserLevel = "Secundaria"
	UserLevelNone      UserLevel = "N/A"
)

var errPersonPayload = errors.New("person payload does not match kind")

// Person is a tagged union over students, staff and parents. Exactly the
// payload named by Kind is set.
type Person struct {
	Kind    PersonKind   `json:"kind"`
	Student *Student     `json:"student,omitempty"`
	Staff   *Staff       `json:"staff,omitempty"`
	Parent  *ParentTutor `json:"parent,omitempty"`
}

// StudentPerson wraps a student.
func StudentPerson(s Student) Person {
	return Person{Kind: PersonKindStudent, Student: &s}
}

// StaffPerson wraps a staff member.
func StaffPerson(s Staff) Person {
	return Person{Kind: PersonKindStaff, Staff: &s}
}

// ParentPerson wraps a parent or tutor.
func ParentPerson(p ParentTutor) Person {
	return Person{Kind: PersonKindParent, Parent: &p}
}

// Validate checks that exactly the payload matching Kind is present.
func (p Person) Validate() error {
	set := 0
	if p.Student != nil {
		set++
	}
	if p.Staff != nil {
		set++
	}
	if p.Parent != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: %d payloads set", errPersonPayload, set)
	}
	switch p.Kind {
	case PersonKindStudent:
		if p.Student == nil {
			return errPersonPayload
		}
	case PersonKindStaff:
		if p.Staff == nil {
			return errPersonPayload
		}
	case PersonKindParent:
		if p.Parent == nil {
			return errPersonPayload
		}
	default:
		return fmt.Errorf("unknown person kind %q", p.Kind)
	}
	return nil
}

// DocumentNumber returns the DNI of the person.
func (p Person) DocumentNumber() string {
	switch p.Kind {
	case PersonKindStudent:
		return p.Student.DocumentNumber
	case PersonKindStaff:
		return p.Staff.DNI
	case PersonKindParent:
		return p.Parent.DNI
	}
	return ""
}

// DisplayName returns the name shown in tables.
func (p Person) DisplayName() string {
	switch p.Kind {
	case PersonKindStudent:
		return p.Student.FullName
	case PersonKindStaff:
		return p.Staff.Name
	case PersonKindParent:
		return p.Parent.Name
	}
	return ""
}

// Status returns the account status.
func (p Person) Status() UserStatus {
	switch p.Kind {
	case PersonKindStudent:
		return p.Student.Status
	case PersonKindStaff:
		return p.Staff.Status
	case PersonKindParent:
		return p.Parent.Status
	}
	return ""
}

// Role maps the variant to its directory role; staff use their category.
func (p Person) Role() UserRole {
	switch p.Kind {
	case PersonKindStudent:
		return UserRoleStudent
	case PersonKindParent:
		return UserRoleParent
	case PersonKindStaff:
		return UserRole(p.Staff.Category)
	}
	return ""
}

// RoleLabel is the human readable role, e.g. "Docente-Secundaria" for staff.
func (p Person) RoleLabel() string {
	if p.Kind == PersonKindStaff && p.Staff.Role != "" {
		return strings.Replace(p.Staff.Role, "_", "-", 1)
	}
	return string(p.Role())
}

// Level derives the educational level from the grade (students) or role (staff).
func (p Person) Level() UserLevel {
	switch p.Kind {
	case PersonKindStudent:
		return LevelForGrade(p.Student.Grade)
	case PersonKindStaff:
		switch {
		case strings.Contains(p.Staff.Role, "Inicial"):
			return UserLevelInitial
		case strings.Contains(p.Staff.Role, "Primaria"):
			return UserLevelPrimary
		case strings.Contains(p.Staff.Role, "Secundaria"):
			return UserLevelSecondary
		}
	}
	return UserLevelNone
}

// GradeSection renders "5°A" for numbered grades, "3 AÑOS Margaritas" for
// initial-level grades and "N/A" for non-students.
func (p Person) GradeSection() string {
	if p.Kind != PersonKindStudent {
		return string(UserLevelNone)
	}
	s := p.Student
	if strings.Contains(s.Grade, "Grado") || strings.Contains(s.Grade, "Año") {
		short := strings.SplitN(s.Grade, " ", 2)[0]
		return short + s.Section
	}
	return s.Grade + " " + s.Section
}

// Sede returns the campus.
func (p Person) Sede() string {
	switch p.Kind {
	case PersonKindStudent:
		return p.Student.Sede
	case PersonKindStaff:
		return p.Staff.Sede
	case PersonKindParent:
		return p.Parent.Sede
	}
	return ""
}

// LastLogin returns the last login time, nil if never logged in.
func (p Person) LastLogin() *time.Time {
	switch p.Kind {
	case PersonKindStudent:
		return p.Student.LastLogin
	case PersonKindStaff:
		return p.Staff.LastLogin
	case PersonKindParent:
		return p.Parent.LastLogin
	}
	return nil
}

// LevelForGrade maps grade labels from the catalog to their level.
func LevelForGrade(grade string) UserLevel {
	switch {
	case strings.Contains(grade, "AÑOS"):
		return UserLevelInitial
	case strings.Contains(grade, "Grado"):
		return UserLevelPrimary
	case strings.Contains(grade, "Año"):
		return UserLevelSecondary
	}
	return UserLevelNone
}
