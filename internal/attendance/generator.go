// Package attendance simulates the attendance feed of the dashboard.
package attendance

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

var weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

var fixedAlerts = []models.AttendanceAlert{
	{
		Type:        models.AlertCritical,
		Title:       "Asistencia Crítica: 5to B",
		Description: "La sección tiene una asistencia por debajo del umbral del 80% esta semana.",
		Time:        "hace 2 horas",
	},
	{
		Type:        models.AlertWarning,
		Title:       "Tardanzas recurrentes: J. Perez",
		Description: "El docente Juan Perez ha acumulado 3 tardanzas esta semana.",
		Time:        "ayer",
	},
	{
		Type:        models.AlertInfo,
		Title:       "Reporte Mensual Disponible",
		Description: "El reporte consolidado del mes anterior ya puede ser generado.",
		Time:        "hace 3 dias",
	},
}

// Generate draws one attendance snapshot for population people. Negative
// absence values are clamped to zero and reported in Warnings.
func Generate(rng *rand.Rand, filters models.AttendanceFilters, population int) models.AttendanceSnapshot {
	pop := float64(population)
	present := int(math.Floor(pop * (0.85 + rng.Float64()*0.14)))
	late := int(math.Floor(pop * (0.01 + rng.Float64()*0.08)))

	var warnings []models.DataQualityWarning
	absent := population - present - late
	if absent < 0 {
		warnings = append(warnings, models.DataQualityWarning{
			Field:    "Faltas Injustificadas",
			Raw:      float64(absent),
			Adjusted: 0,
			Message:  fmt.Sprintf("attendance %d plus lateness %d exceed population %d", present, late, population),
		})
		absent = 0
	}

	kpis := []models.AttendanceKPI{
		{Title: "Asistencias", Value: present, Change: rng.Intn(21) - 10},
		{Title: "Tardanzas", Value: late, Change: rng.Intn(7) - 3},
		{Title: "Faltas Injustificadas", Value: absent, Change: rng.Intn(5) - 2},
	}

	chart := make([]models.AttendanceChartPoint, 0, len(weekdays))
	for _, day := range weekdays {
		a := 90 + rng.Float64()*9
		t := 1 + rng.Float64()*7
		f := 100 - a - t
		if f < 0 {
			warnings = append(warnings, models.DataQualityWarning{
				Field:    "faltas:" + day,
				Raw:      round1(f),
				Adjusted: 0,
				Message:  "weekday attendance and lateness exceed 100%",
			})
			f = 0
		}
		chart = append(chart, models.AttendanceChartPoint{
			Name:       day,
			Attendance: round1(a),
			Lateness:   round1(t),
			Absence:    round1(f),
		})
	}

	alerts := make([]models.AttendanceAlert, 0, len(fixedAlerts))
	for _, alert := range fixedAlerts {
		if rng.Float64() > 0.3 {
			alerts = append(alerts, alert)
		}
	}

	return models.AttendanceSnapshot{
		Filters:    filters,
		Population: population,
		KPIs:       kpis,
		Chart:      chart,
		Alerts:     alerts,
		Warnings:   warnings,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Generator wraps Generate with a shared random source.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{rng: rng, logger: logger}
}

// Snapshot generates a snapshot and logs every data quality correction.
func (g *Generator) Snapshot(filters models.AttendanceFilters, population int) models.AttendanceSnapshot {
	g.mu.Lock()
	snap := Generate(g.rng, filters, population)
	g.mu.Unlock()

	for _, w := range snap.Warnings {
		g.logger.Warn("attendance value clamped",
			zap.String("field", w.Field),
			zap.Float64("raw", w.Raw),
			zap.Float64("adjusted", w.Adjusted),
			zap.Int("population", population),
		)
	}
	return snap
}
