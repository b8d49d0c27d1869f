// Package seed produces the in-memory roster, calendar and grade catalog
// the dashboard starts with.
package seed

import (
	"math/rand"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// Options sizes the generated dataset.
type Options struct {
	AcademicYear int
	Students     int
	Parents      int
	Staff        int
}

// Dataset is everything the store is initialised with.
type Dataset struct {
	Catalog  models.GradeCatalog
	Students []models.Student
	Staff    []models.Staff
	Parents  []models.ParentTutor
	Events   []models.CalendarEvent
}

// Generate builds a full dataset from rng.
func Generate(rng *rand.Rand, opts Options) Dataset {
	if opts.AcademicYear == 0 {
		opts.AcademicYear = 2025
	}
	catalog := Grades()
	students := Students(rng, catalog, opts.AcademicYear, opts.Students)
	parents := Parents(rng, opts.AcademicYear, students, opts.Parents)
	return Dataset{
		Catalog:  catalog,
		Students: students,
		Staff:    Staff(rng, opts.AcademicYear, opts.Staff),
		Parents:  parents,
		Events:   Events(rng, opts.AcademicYear),
	}
}
