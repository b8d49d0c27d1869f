package search

import (
	"errors"
	"sort"
	"strings"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// ErrUnknownSortColumn is returned when the sort key is not a table column.
var ErrUnknownSortColumn = errors.New("unknown sort column")

// Sortable user table columns.
const (
	ColumnName         = "name"
	ColumnRole         = "role"
	ColumnLevel        = "level"
	ColumnGradeSection = "gradeSection"
	ColumnStatus       = "status"
	ColumnSede         = "sede"
	ColumnLastLogin    = "lastLogin"
)

var textColumns = map[string]func(models.Person) string{
	ColumnName:         models.Person.DisplayName,
	ColumnRole:         models.Person.RoleLabel,
	ColumnLevel:        func(p models.Person) string { return string(p.Level()) },
	ColumnGradeSection: models.Person.GradeSection,
	ColumnStatus:       func(p models.Person) string { return string(p.Status()) },
	ColumnSede:         models.Person.Sede,
}

// ValidColumn reports whether key can be sorted on.
func ValidColumn(key string) bool {
	_, ok := textColumns[key]
	return ok || key == ColumnLastLogin
}

// FilterUsers keeps the people matching every set field of filter.
func FilterUsers(people []models.Person, filter models.UserFilter) []models.Person {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Person, 0, len(people))
	for _, p := range people {
		if filter.Kind != "" && p.Kind != filter.Kind {
			continue
		}
		if filter.Role != "" && p.Role() != filter.Role {
			continue
		}
		if filter.Status != "" && p.Status() != filter.Status {
			continue
		}
		if filter.Level != "" && p.Level() != filter.Level {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.DisplayName()), query) &&
			!strings.Contains(p.DocumentNumber(), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortUsers returns people ordered by cfg. A nil cfg keeps insertion order.
// Missing last logins sort after every present one in both directions.
func SortUsers(people []models.Person, cfg *models.SortConfig) ([]models.Person, error) {
	out := make([]models.Person, len(people))
	copy(out, people)
	if cfg == nil || cfg.Key == "" {
		return out, nil
	}
	if !ValidColumn(cfg.Key) {
		return nil, ErrUnknownSortColumn
	}
	desc := cfg.Direction == models.SortDesc

	if cfg.Key == ColumnLastLogin {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].LastLogin(), out[j].LastLogin()
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			case desc:
				return a.After(*b)
			default:
				return a.Before(*b)
			}
		})
		return out, nil
	}

	key := textColumns[cfg.Key]
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		cmp := c.CompareString(key(out[i]), key(out[j]))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out, nil
}
