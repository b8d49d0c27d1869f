package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// Document file names.
const (
	IDCardsFilename = "Carnets_Escolares.pdf"
)

// EnrollmentFormFilename is the download name of a student's FUM.
func EnrollmentFormFilename(dni string) string {
	return fmt.Sprintf("Ficha_Matricula_%s.pdf", dni)
}

// CertificateFilename is the download name of a student's constancia.
func CertificateFilename(dni string) string {
	return fmt.Sprintf("Constancia_Matricula_%s.pdf", dni)
}

// School identifies the issuer printed on every document.
type School struct {
	Name         string
	City         string
	AcademicYear int
}

// DocumentRenderer renders the enrollment documents of the school.
type DocumentRenderer struct {
	school School
}

// NewDocumentRenderer constructs a renderer for school.
func NewDocumentRenderer(school School) *DocumentRenderer {
	return &DocumentRenderer{school: school}
}

var spanishMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

// SpanishDate formats t as "05 de agosto de 2025".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// EnrollmentForm renders the Ficha Única de Matrícula.
func (r *DocumentRenderer) EnrollmentForm(s models.Student) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(14, 22, tr("Ficha Única de Matrícula - SIAGIE"))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(14, 28, tr(r.school.Name))

	rows := [][2]string{
		{"Apellidos y Nombres", s.FullName},
		{"DNI", s.DocumentNumber},
		{"Código de Estudiante", s.StudentCode},
		{"Fecha de Nacimiento", s.BirthDate},
		{"Género", s.Gender},
		{"Grado y Sección", fmt.Sprintf("%s %q", s.Grade, s.Section)},
		{"Condición", string(s.Condition)},
		{"Estado de Matrícula", string(s.EnrollmentStatus)},
	}

	pdf.SetXY(14, 40)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 8, "Campo", "1", 0, "L", true, 0, "")
	pdf.CellFormat(122, 8, tr("Información del Estudiante"), "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetX(14)
		pdf.CellFormat(60, 8, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(122, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	finalY := pdf.GetY()
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(14, finalY+20, "Firma del Apoderado:")
	pdf.Line(14, finalY+30, 80, finalY+30)
	pdf.Text(130, finalY+20, "Firma del Director:")
	pdf.Line(130, finalY+30, 196, finalY+30)

	return output(pdf)
}

func educationLevel(grade string) string {
	switch models.LevelForGrade(grade) {
	case models.UserLevelSecondary:
		return "SECUNDARIA"
	case models.UserLevelInitial:
		return "INICIAL"
	default:
		return "PRIMARIA"
	}
}

// Certificate renders the constancia de matrícula dated on issued.
func (r *DocumentRenderer) Certificate(s models.Student, issued time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	centered := func(y float64, text string) {
		pdf.SetXY(10, y-5)
		pdf.CellFormat(190, 7, tr(text), "", 0, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 18)
	centered(22, fmt.Sprintf("CONSTANCIA DE MATRÍCULA - %d", r.school.AcademicYear))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(14, 40, tr(fmt.Sprintf("La Dirección de la %s hace constar que:", r.school.Name)))

	pdf.SetFont("Helvetica", "B", 12)
	centered(60, strings.ToUpper(s.FullName))

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(14, 70)
	pdf.MultiCell(180, 6, tr(fmt.Sprintf(
		"Identificado(a) con DNI N° %s, se encuentra debidamente matriculado(a) en esta institución educativa para el año lectivo %d, en el:",
		s.DocumentNumber, r.school.AcademicYear)), "", "L", false)

	pdf.SetFont("Helvetica", "B", 14)
	centered(95, fmt.Sprintf("%s DE EDUCACIÓN %s - SECCIÓN \"%s\"",
		strings.ToUpper(s.Grade), educationLevel(s.Grade), strings.ToUpper(s.Section)))

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(14, 110)
	pdf.MultiCell(180, 6, tr("Se expide la presente constancia a solicitud del interesado para los fines que estime conveniente."), "", "L", false)

	pdf.Text(120, 140, tr(fmt.Sprintf("%s, %s", r.school.City, SpanishDate(issued))))
	pdf.Text(130, 170, "________________________")
	pdf.Text(145, 175, tr("Dirección"))

	return output(pdf)
}

// ID card geometry in millimetres.
const (
	cardWidth    = 85.6
	cardHeight   = 53.98
	cardMargin   = 15.0
	cardGap      = 5.0
	cardsPerRow  = 2
	cardsPerPage = 8
)

// IDCards renders student ID cards, two per row and eight per A4 page.
func (r *DocumentRenderer) IDCards(students []models.Student) ([]byte, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("id cards require at least one student")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, s := range students {
		slot := i % cardsPerPage
		if slot == 0 {
			pdf.AddPage()
		}
		x := cardMargin + float64(slot%cardsPerRow)*(cardWidth+cardGap)
		y := cardMargin + float64(slot/cardsPerRow)*(cardHeight+cardGap)

		pdf.SetFillColor(79, 70, 229)
		pdf.RoundedRect(x, y, cardWidth, cardHeight, 3, "1234", "F")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(x+5, y+8, tr(r.school.Name))
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(x+5, y+13, fmt.Sprintf("CARNET ESCOLAR %d", r.school.AcademicYear))

		// photo placeholder with initials
		pdf.SetFillColor(255, 255, 255)
		pdf.Rect(x+5, y+18, 25, 30, "F")
		pdf.SetTextColor(79, 70, 229)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetXY(x+5, y+29)
		pdf.CellFormat(25, 8, tr(s.Initials()), "", 0, "C", false, 0, "")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(x+33, y+20)
		pdf.MultiCell(50, 4, tr(strings.ToUpper(s.FullName)), "", "L", false)

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(200, 200, 255)
		pdf.Text(x+33, y+35, "DNI:")
		pdf.Text(x+33, y+40, "GRADO:")
		pdf.Text(x+55, y+40, tr("SECCIÓN:"))
		pdf.Text(x+33, y+45, tr("CÓDIGO:"))

		pdf.SetTextColor(255, 255, 255)
		pdf.Text(x+40, y+35, s.DocumentNumber)
		pdf.Text(x+43, y+40, tr(s.Grade))
		pdf.Text(x+68, y+40, tr(s.Section))
		pdf.Text(x+46, y+45, s.StudentCode)
	}

	return output(pdf)
}

// AttendanceReport renders an attendance snapshot as KPI and weekday tables.
func (r *DocumentRenderer) AttendanceReport(snap models.AttendanceSnapshot, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(14, 15, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Reporte de Asistencia"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(r.school.Name), "", 1, "C", false, 0, "")
	f := snap.Filters
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s | %s | Nivel: %s | Grado: %s | Sección: %s | Población: %d",
		f.PopulationFocus, f.TimeRange, f.Level, f.Grade, f.Section, snap.Population)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s, %s", r.school.City, SpanishDate(generated))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	tableHeader := func(cols []string, widths []float64) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(41, 128, 185)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range cols {
			pdf.CellFormat(widths[i], 8, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}

	kpiWidths := []float64{90, 46, 46}
	tableHeader([]string{"Indicador", "Valor", "Variación"}, kpiWidths)
	for _, k := range snap.KPIs {
		pdf.CellFormat(kpiWidths[0], 7, tr(k.Title), "1", 0, "L", false, 0, "")
		pdf.CellFormat(kpiWidths[1], 7, fmt.Sprintf("%d", k.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(kpiWidths[2], 7, fmt.Sprintf("%+d%%", k.Change), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	chartWidths := []float64{55, 42, 42, 43}
	tableHeader([]string{"Día", "Asistencia %", "Tardanzas %", "Faltas %"}, chartWidths)
	for _, p := range snap.Chart {
		pdf.CellFormat(chartWidths[0], 7, tr(p.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(chartWidths[1], 7, fmt.Sprintf("%.1f", p.Attendance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(chartWidths[2], 7, fmt.Sprintf("%.1f", p.Lateness), "1", 0, "R", false, 0, "")
		pdf.CellFormat(chartWidths[3], 7, fmt.Sprintf("%.1f", p.Absence), "1", 1, "R", false, 0, "")
	}

	if len(snap.Alerts) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Alertas", "", 1, "L", false, 0, "")
		for _, a := range snap.Alerts {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("[%s] %s (%s)", strings.ToUpper(string(a.Type)), a.Title, a.Time)), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 6, tr(a.Description), "", "L", false)
		}
	}

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
