package search

import (
	"errors"
	"sort"
	"strings"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// ErrUnknownKPI is returned for a KPI selector outside models.KPIs.
var ErrUnknownKPI = errors.New("unknown kpi")

// Apply derives the enrollment view: KPI filter, then every valid tag, then
// a stable sort by full name. An empty kpi disables the KPI filter. The
// input slice is never modified.
func Apply(students []models.Student, kpi models.KPI, tags []models.SearchTag) ([]models.Student, error) {
	var (
		status    models.EnrollmentStatus
		filterKPI bool
	)
	if kpi != "" {
		s, ok := kpi.Status()
		if !ok {
			return nil, ErrUnknownKPI
		}
		status, filterKPI = s, true
	}

	active := make([]models.SearchTag, 0, len(tags))
	for _, tag := range tags {
		if tag.Valid {
			active = append(active, tag)
		}
	}

	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if filterKPI && s.EnrollmentStatus != status {
			continue
		}
		if !matchesAll(s, active) {
			continue
		}
		out = append(out, s)
	}

	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].FullName, out[j].FullName) < 0
	})
	return out, nil
}

func matchesAll(s models.Student, tags []models.SearchTag) bool {
	for _, tag := range tags {
		if !matches(s, tag) {
			return false
		}
	}
	return true
}

func matches(s models.Student, tag models.SearchTag) bool {
	switch tag.Type {
	case models.TagTypeStatus:
		return strings.EqualFold(string(s.EnrollmentStatus), tag.Value)
	case models.TagTypeType:
		return strings.EqualFold(string(s.EnrollmentType), tag.Value)
	default:
		return keywordMatches(s, strings.ToLower(tag.Value))
	}
}

// CountKPIs returns the four KPI tiles over the whole roster.
func CountKPIs(students []models.Student) []models.KPICount {
	counts := make(map[models.EnrollmentStatus]int, len(models.KPIs))
	for _, s := range students {
		counts[s.EnrollmentStatus]++
	}
	out := make([]models.KPICount, 0, len(models.KPIs))
	for _, k := range models.KPIs {
		status, _ := k.Status()
		out = append(out, models.KPICount{Title: k, Value: counts[status]})
	}
	return out
}
