package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

func sampleStudent(dni string) models.Student {
	return models.Student{
		DocumentNumber:   dni,
		StudentCode:      "S2025" + dni,
		PaternalLastName: "MUÑOZ",
		MaternalLastName: "PEÑA",
		Names:            "JOSÉ",
		FullName:         "MUÑOZ PEÑA, JOSÉ",
		Gender:           "Hombre",
		BirthDate:        "2012-04-09",
		Grade:            "1° Año",
		Section:          "A",
		Condition:        models.EnrollmentConditionPromoted,
		EnrollmentStatus: models.EnrollmentStatusEnrolled,
	}
}

func renderer() *DocumentRenderer {
	return NewDocumentRenderer(School{Name: "IEE 6049 Ricardo Palma", City: "Lima", AcademicYear: 2025})
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"DNI", "Nombre"},
		Rows:    []map[string]string{{"DNI": "70000001", "Nombre": "MUÑOZ, ANA"}},
	})
	require.NoError(t, err)
	text := strings.TrimPrefix(string(out), "\ufeff")
	assert.Equal(t, "DNI,Nombre\n70000001,\"MUÑOZ, ANA\"\n", text)

	_, err = NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	rows := make([]map[string]string, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, map[string]string{"DNI": "70000001", "Nombre": "ÁLVAREZ"})
	}
	out, err := NewPDFExporter("IEE 6049").Render(Dataset{Headers: []string{"DNI", "Nombre"}, Rows: rows}, "Matrícula")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDocumentsRender(t *testing.T) {
	r := renderer()
	s := sampleStudent("70000001")

	form, err := r.EnrollmentForm(s)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(form, []byte("%PDF")))

	cert, err := r.Certificate(s, time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(cert, []byte("%PDF")))

	students := make([]models.Student, 0, 9)
	for i := 0; i < 9; i++ {
		students = append(students, sampleStudent("7000000"+string(rune('0'+i))))
	}
	cards, err := r.IDCards(students)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(cards, []byte("%PDF")))
	assert.Equal(t, 2, bytes.Count(cards, []byte("/Type /Page\n")))

	_, err = r.IDCards(nil)
	assert.Error(t, err)

	snap := models.AttendanceSnapshot{
		Filters:    models.DefaultAttendanceFilters(),
		Population: 100,
		KPIs:       []models.AttendanceKPI{{Title: "Asistencias", Value: 90, Change: 2}},
		Chart:      []models.AttendanceChartPoint{{Name: "Miércoles", Attendance: 92.1, Lateness: 3.2, Absence: 4.7}},
		Alerts:     []models.AttendanceAlert{{Type: models.AlertInfo, Title: "Reporte Mensual Disponible", Description: "x", Time: "ayer"}},
	}
	report, err := r.AttendanceReport(snap, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(report, []byte("%PDF")))
}

func TestSpanishDateAndFilenames(t *testing.T) {
	assert.Equal(t, "05 de agosto de 2025", SpanishDate(time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Ficha_Matricula_70000001.pdf", EnrollmentFormFilename("70000001"))
	assert.Equal(t, "Constancia_Matricula_70000001.pdf", CertificateFilename("70000001"))
	assert.Equal(t, "INICIAL", educationLevel("3 AÑOS"))
	assert.Equal(t, "SECUNDARIA", educationLevel("2° Año"))
	assert.Equal(t, "PRIMARIA", educationLevel("2° Grado"))
}
