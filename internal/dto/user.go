package dto

import (
	"time"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// UserQuery filters, sorts and pages the user directory.
type UserQuery struct {
	Filter  models.UserFilter
	Sort    *models.SortConfig
	Page    int
	PerPage int
}

// UserRow is one row of the user directory.
type UserRow struct {
	Kind         models.PersonKind `json:"kind"`
	DNI          string            `json:"dni"`
	Name         string            `json:"name"`
	Role         models.UserRole   `json:"role"`
	RoleLabel    string            `json:"roleLabel"`
	Level        models.UserLevel  `json:"level"`
	GradeSection string            `json:"gradeSection"`
	Status       models.UserStatus `json:"status"`
	Sede         string            `json:"sede"`
	LastLogin    *time.Time        `json:"lastLogin"`
	Person       models.Person     `json:"person"`
}

// BulkUsersRequest selects users by document number.
type BulkUsersRequest struct {
	DNIs []string `json:"dnis" validate:"required,min=1,dive,required"`
}

// BulkDeleteResponse reports how many users were removed.
type BulkDeleteResponse struct {
	Removed int `json:"removed"`
}
