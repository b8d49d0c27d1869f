package models

import "time"

// StaffCategory groups staff in the directory; it doubles as their role.
type StaffCategory string

const (
	StaffCategoryDirector       StaffCategory = "Director"
	StaffCategoryAdministrative StaffCategory = "Administrativo"
	StaffCategoryTeacher        StaffCategory = "Docente"
	StaffCategorySupport        StaffCategory = "Apoyo"
)

// Staff is a teacher, administrator or support worker.
type Staff struct {
	DNI                  string        `json:"dni"`
	Name                 string        `json:"name"`
	Area                 string        `json:"area"`
	Role                 string        `json:"role"`
	Category             StaffCategory `json:"category"`
	Status               UserStatus    `json:"status"`
	Sede                 string        `json:"sede"`
	LastLogin            *time.Time    `json:"lastLogin"`
	AvatarURL            string        `json:"avatarUrl"`
	Tags                 []string      `json:"tags"`
	NotesProgress        *int          `json:"notesProgress,omitempty"`
	AttendancePercentage int           `json:"attendancePercentage"`
}
