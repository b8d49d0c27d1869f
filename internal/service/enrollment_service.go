package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/search"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/export"
	"github.com/noah-isme/matricula-dashboard-api/pkg/pagination"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type tableRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// EnrollmentConfig tunes the enrollment table.
type EnrollmentConfig struct {
	PageSize     int
	AcademicYear int
}

// EnrollmentService derives the matriculation view and applies row actions.
type EnrollmentService struct {
	roster    rosterStore
	catalog   models.GradeCatalog
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       EnrollmentConfig
	csv       csvRenderer
	pdf       tableRenderer
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(roster rosterStore, catalog models.GradeCatalog, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, cfg EnrollmentConfig, csv csvRenderer, pdf tableRenderer) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 7
	}
	if cfg.AcademicYear == 0 {
		cfg.AcademicYear = 2025
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter("")
	}
	return &EnrollmentService{
		roster:    roster,
		catalog:   catalog,
		validator: ensureValidator(validate),
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		csv:       csv,
		pdf:       pdf,
	}
}

// Catalog returns the grade catalog.
func (s *EnrollmentService) Catalog() models.GradeCatalog {
	return s.catalog
}

// parseTags rebuilds the committed tag set from raw values in order.
func parseTags(values []string, students []models.Student) ([]models.SearchTag, error) {
	tags := make([]models.SearchTag, 0, len(values))
	for _, v := range values {
		next, _, err := search.AddTag(tags, v, students)
		if err != nil {
			return nil, translateDomainError(fmt.Errorf("tag %q: %w", v, err))
		}
		tags = next
	}
	return tags, nil
}

func (s *EnrollmentService) derive(q dto.EnrollmentQuery) ([]models.Student, []models.SearchTag, store.State, error) {
	state := s.roster.Snapshot()
	tags, err := parseTags(q.Tags, state.Students)
	if err != nil {
		return nil, nil, state, err
	}
	view, err := search.Apply(state.Students, q.KPI, tags)
	if err != nil {
		return nil, nil, state, translateDomainError(err)
	}
	s.metrics.RecordViewRecomputation("enrollment", len(view))
	return view, tags, state, nil
}

// View returns one page of the derived enrollment view.
func (s *EnrollmentService) View(ctx context.Context, q dto.EnrollmentQuery) (*dto.EnrollmentViewResponse, *models.Pagination, error) {
	view, tags, state, err := s.derive(q)
	if err != nil {
		return nil, nil, err
	}
	page := pagination.Paginate(view, q.Page, s.cfg.PageSize)
	s.logger.Debug("enrollment view derived",
		zap.String("kpi", string(q.KPI)),
		zap.Int("tags", len(tags)),
		zap.Int("matches", page.TotalCount),
		zap.Int("page", page.Page),
	)
	return &dto.EnrollmentViewResponse{
		Students: page.Items,
		Tags:     tags,
		KPI:      q.KPI,
		KPIs:     search.CountKPIs(state.Students),
	}, pageInfo(page), nil
}

// KPIs returns the KPI tiles over the whole roster.
func (s *EnrollmentService) KPIs(ctx context.Context) []models.KPICount {
	return search.CountKPIs(s.roster.Snapshot().Students)
}

// Tags applies a tag command to the client's tag set.
func (s *EnrollmentService) Tags(ctx context.Context, req dto.TagCommandRequest) (*dto.TagCommandResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tag command")
	}
	students := s.roster.Snapshot().Students
	tags, err := parseTags(req.Tags, students)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case dto.TagActionAdd:
		next, added, err := search.AddTag(tags, req.Input, students)
		if err != nil {
			return nil, translateDomainError(err)
		}
		return &dto.TagCommandResponse{Tags: next, Added: &added}, nil
	case dto.TagActionRemove:
		return &dto.TagCommandResponse{Tags: search.RemoveTag(tags, req.Input)}, nil
	default:
		return &dto.TagCommandResponse{Tags: search.PopTag(tags)}, nil
	}
}

// Student returns one student by DNI.
func (s *EnrollmentService) Student(ctx context.Context, dni string) (*models.Student, error) {
	student, ok := s.roster.Snapshot().FindStudent(dni)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

func (s *EnrollmentService) apply(action, dni string, reduce func(store.State) (store.State, error)) (*models.Student, error) {
	state, err := s.roster.Update(reduce)
	if err != nil {
		s.logger.Info("enrollment action rejected", zap.String("action", action), zap.String("dni", dni), zap.Error(err))
		return nil, translateDomainError(err)
	}
	student, _ := state.FindStudent(dni)
	s.logger.Info("enrollment action applied",
		zap.String("action", action),
		zap.String("dni", dni),
		zap.String("status", string(student.EnrollmentStatus)),
	)
	return &student, nil
}

// Transfer marks a student as transferred out.
func (s *EnrollmentService) Transfer(ctx context.Context, dni string) (*models.Student, error) {
	return s.apply("transfer", dni, func(st store.State) (store.State, error) { return store.Transfer(st, dni) })
}

// Withdraw marks a student as withdrawn.
func (s *EnrollmentService) Withdraw(ctx context.Context, dni string) (*models.Student, error) {
	return s.apply("withdraw", dni, func(st store.State) (store.State, error) { return store.Withdraw(st, dni) })
}

// AssignVacancy enrolls a pre-enrolled or pending student.
func (s *EnrollmentService) AssignVacancy(ctx context.Context, dni string) (*models.Student, error) {
	return s.apply("assign_vacancy", dni, func(st store.State) (store.State, error) { return store.AssignVacancy(st, dni) })
}

// ChangeSection moves a student to a section offered by the catalog.
func (s *EnrollmentService) ChangeSection(ctx context.Context, dni string, req dto.SectionChangeRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section change")
	}
	return s.apply("change_section", dni, func(st store.State) (store.State, error) {
		current, ok := st.FindStudent(dni)
		if !ok {
			return st, store.ErrStudentNotFound
		}
		grade := req.Grade
		if grade == "" {
			grade = current.Grade
		}
		if !s.catalog.HasSection(grade, req.Section) {
			return st, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("section %q is not offered for %s", req.Section, grade))
		}
		return store.ChangeSection(st, dni, models.SectionChange{Grade: grade, Section: req.Section, Shift: req.Shift})
	})
}

var exportHeaders = []string{"DNI", "Código", "Apellidos y Nombres", "Grado", "Sección", "Estado", "Tipo", "Condición", "Sede"}

// Export renders the full derived view, unpaginated, as CSV or PDF.
func (s *EnrollmentService) Export(ctx context.Context, q dto.EnrollmentQuery, format string) (*dto.ExportFile, error) {
	view, _, _, err := s.derive(q)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]string, 0, len(view))
	for _, st := range view {
		rows = append(rows, map[string]string{
			"DNI":                 st.DocumentNumber,
			"Código":              st.StudentCode,
			"Apellidos y Nombres": st.FullName,
			"Grado":               st.Grade,
			"Sección":             st.Section,
			"Estado":              string(st.EnrollmentStatus),
			"Tipo":                string(st.EnrollmentType),
			"Condición":           string(st.Condition),
			"Sede":                st.Sede,
		})
	}
	dataset := export.Dataset{Headers: exportHeaders, Rows: rows}
	base := "Matricula_" + strconv.Itoa(s.cfg.AcademicYear)

	switch format {
	case "", dto.ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, translateDomainError(err)
		}
		s.metrics.RecordDocument("enrollment_csv")
		return &dto.ExportFile{Filename: base + ".csv", ContentType: "text/csv; charset=utf-8", Payload: payload}, nil
	case dto.ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, fmt.Sprintf("Nómina de matrícula %d", s.cfg.AcademicYear))
		if err != nil {
			return nil, translateDomainError(err)
		}
		s.metrics.RecordDocument("enrollment_pdf")
		return &dto.ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Payload: payload}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
