package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	"github.com/noah-isme/matricula-dashboard-api/internal/wizard"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

// WizardConfig configures the enrollment wizard.
type WizardConfig struct {
	SessionTTL   time.Duration
	AcademicYear int
	APIPrefix    string
}

// WizardSession is a wizard session plus, once finished, document links.
type WizardSession struct {
	wizard.Session
	Documents *dto.WizardDocuments `json:"documents,omitempty"`
}

// WizardService drives enrollment wizard sessions.
type WizardService struct {
	roster    rosterStore
	catalog   models.GradeCatalog
	sessions  *wizard.Sessions
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       WizardConfig
	now       func() time.Time
}

// NewWizardService constructs the service.
func NewWizardService(roster rosterStore, catalog models.GradeCatalog, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, cfg WizardConfig) *WizardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.AcademicYear == 0 {
		cfg.AcademicYear = 2025
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}
	return &WizardService{
		roster:    roster,
		catalog:   catalog,
		sessions:  wizard.NewSessions(cfg.SessionTTL, nil),
		validator: ensureValidator(validate),
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *WizardService) wrap(session wizard.Session) *WizardSession {
	out := &WizardSession{Session: session}
	if session.Step == wizard.StepSuccess && session.Student != nil {
		base := strings.TrimRight(s.cfg.APIPrefix, "/") + "/documents/students/" + session.Student.DocumentNumber
		out.Documents = &dto.WizardDocuments{
			EnrollmentForm: base + "/enrollment-form",
			Certificate:    base + "/certificate",
		}
	}
	return out
}

func wizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "wizard session not found or expired")
	case errors.Is(err, wizard.ErrInvalidTransition):
		return appErrors.Wrap(err, appErrors.ErrInvalidTransition.Code, appErrors.ErrInvalidTransition.Status, err.Error())
	}
	return translateDomainError(err)
}

// Start opens a new session at the identification step.
func (s *WizardService) Start(ctx context.Context) *WizardSession {
	session := s.sessions.Start()
	s.logger.Info("wizard session started", zap.String("session_id", session.ID))
	return s.wrap(session)
}

// Get returns a session.
func (s *WizardService) Get(ctx context.Context, id string) (*WizardSession, error) {
	session, err := s.sessions.Get(id)
	if err != nil {
		return nil, wizardError(err)
	}
	return s.wrap(session), nil
}

// SetIdentification records the student being enrolled. Only allowed while
// the session is on the identification step.
func (s *WizardService) SetIdentification(ctx context.Context, id string, req dto.IdentificationRequest) (*WizardSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid identification")
	}
	ident, err := s.identify(req)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.Update(id, func(cur wizard.Session) (wizard.Session, error) {
		if cur.Step != wizard.StepIdentification {
			return cur, fmt.Errorf("%w: identification can only change on step %s", wizard.ErrInvalidTransition, wizard.StepIdentification)
		}
		cur.Identification = &ident
		cur.Summary = nil
		return cur, nil
	})
	if err != nil {
		return nil, wizardError(err)
	}
	return s.wrap(session), nil
}

func (s *WizardService) identify(req dto.IdentificationRequest) (models.EnrollmentIdentification, error) {
	query := strings.ToUpper(strings.TrimSpace(req.Query))
	isDNI := dniPattern.MatchString(query)
	if !isDNI && !studentCodePattern.MatchString(query) {
		return models.EnrollmentIdentification{}, appErrors.Clone(appErrors.ErrValidation, "query must be an 8 digit DNI or a student code")
	}

	for _, st := range s.roster.Snapshot().Students {
		if st.DocumentNumber != query && st.StudentCode != query {
			continue
		}
		if st.EnrollmentStatus == models.EnrollmentStatusEnrolled {
			return models.EnrollmentIdentification{}, appErrors.Clone(appErrors.ErrConflict, "student is already enrolled")
		}
		return models.EnrollmentIdentification{
			Query:            query,
			DocumentNumber:   st.DocumentNumber,
			PaternalLastName: st.PaternalLastName,
			MaternalLastName: st.MaternalLastName,
			Names:            st.Names,
			Gender:           st.Gender,
			BirthDate:        st.BirthDate,
			Existing:         true,
		}, nil
	}

	if !isDNI {
		return models.EnrollmentIdentification{}, appErrors.Clone(appErrors.ErrNotFound, "no student with that code")
	}
	if strings.TrimSpace(req.PaternalLastName) == "" || strings.TrimSpace(req.Names) == "" || req.Gender == "" || req.BirthDate == "" {
		return models.EnrollmentIdentification{}, appErrors.Clone(appErrors.ErrValidation, "new students require paternalLastName, names, gender and birthDate")
	}
	return models.EnrollmentIdentification{
		Query:            query,
		DocumentNumber:   query,
		PaternalLastName: strings.ToUpper(strings.TrimSpace(req.PaternalLastName)),
		MaternalLastName: strings.ToUpper(strings.TrimSpace(req.MaternalLastName)),
		Names:            strings.ToUpper(strings.TrimSpace(req.Names)),
		Gender:           req.Gender,
		BirthDate:        req.BirthDate,
	}, nil
}

// SetPlacement records level, grade, section and condition. Only allowed
// on the location and condition step.
func (s *WizardService) SetPlacement(ctx context.Context, id string, req dto.PlacementRequest) (*WizardSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid placement")
	}
	if !s.catalog.LevelHasGrade(req.Level, req.Grade) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("grade %q is not offered in %s", req.Grade, req.Level))
	}
	if !s.catalog.HasSection(req.Grade, req.Section) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("section %q is not offered for %s", req.Section, req.Grade))
	}
	placement := models.EnrollmentPlacement{
		Level:        req.Level,
		Grade:        req.Grade,
		Section:      req.Section,
		Shift:        req.Shift,
		Type:         req.Type,
		Condition:    req.Condition,
		Exonerations: req.Exonerations,
	}
	session, err := s.sessions.Update(id, func(cur wizard.Session) (wizard.Session, error) {
		if cur.Step != wizard.StepLocationCondition {
			return cur, fmt.Errorf("%w: placement can only change on step %s", wizard.ErrInvalidTransition, wizard.StepLocationCondition)
		}
		cur.Placement = &placement
		return cur, nil
	})
	if err != nil {
		return nil, wizardError(err)
	}
	return s.wrap(session), nil
}

// Next advances the session; the current step's payload must be present.
func (s *WizardService) Next(ctx context.Context, id string) (*WizardSession, error) {
	session, err := s.sessions.Update(id, func(cur wizard.Session) (wizard.Session, error) {
		switch cur.Step {
		case wizard.StepIdentification:
			if cur.Identification == nil {
				return cur, appErrors.Clone(appErrors.ErrValidation, "identification is required before continuing")
			}
		case wizard.StepLocationCondition:
			if cur.Placement == nil {
				return cur, appErrors.Clone(appErrors.ErrValidation, "placement is required before continuing")
			}
		}
		next, err := cur.Step.Next()
		if err != nil {
			return cur, err
		}
		cur.Step = next
		if next == wizard.StepConfirmation {
			cur.Summary = summarize(*cur.Identification, *cur.Placement)
		}
		return cur, nil
	})
	s.metrics.RecordWizardTransition("next", err)
	if err != nil {
		return nil, wizardError(err)
	}
	return s.wrap(session), nil
}

// Back returns to the previous step keeping the entered payloads.
func (s *WizardService) Back(ctx context.Context, id string) (*WizardSession, error) {
	session, err := s.sessions.Update(id, func(cur wizard.Session) (wizard.Session, error) {
		prev, err := cur.Step.Back()
		if err != nil {
			return cur, err
		}
		cur.Step = prev
		cur.Summary = nil
		return cur, nil
	})
	s.metrics.RecordWizardTransition("back", err)
	if err != nil {
		return nil, wizardError(err)
	}
	return s.wrap(session), nil
}

// Finish enrolls the student and moves the session to success.
func (s *WizardService) Finish(ctx context.Context, id string) (*WizardSession, error) {
	session, err := s.sessions.Update(id, func(cur wizard.Session) (wizard.Session, error) {
		next, err := cur.Step.Finish()
		if err != nil {
			return cur, err
		}
		student, err := s.enroll(*cur.Identification, *cur.Placement)
		if err != nil {
			return cur, err
		}
		cur.Step = next
		cur.Student = &student
		return cur, nil
	})
	s.metrics.RecordWizardTransition("finish", err)
	if err != nil {
		return nil, wizardError(err)
	}
	s.logger.Info("student enrolled through wizard",
		zap.String("session_id", session.ID),
		zap.String("dni", session.Student.DocumentNumber),
		zap.String("grade", session.Student.Grade),
		zap.String("section", session.Student.Section),
	)
	return s.wrap(session), nil
}

func summarize(ident models.EnrollmentIdentification, placement models.EnrollmentPlacement) *models.EnrollmentSummary {
	return &models.EnrollmentSummary{
		Student:   models.ComposeFullName(ident.PaternalLastName, ident.MaternalLastName, ident.Names),
		DNI:       ident.DocumentNumber,
		Placement: fmt.Sprintf("%s - %s \"%s\" (%s)", placement.Level, placement.Grade, placement.Section, placement.Shift),
		Condition: placement.Condition,
		Type:      placement.Type,
	}
}

func (s *WizardService) enroll(ident models.EnrollmentIdentification, placement models.EnrollmentPlacement) (models.Student, error) {
	var enrolled models.Student
	_, err := s.roster.Update(func(st store.State) (store.State, error) {
		student, exists := st.FindStudent(ident.DocumentNumber)
		if exists && student.EnrollmentStatus == models.EnrollmentStatusEnrolled {
			return st, appErrors.Clone(appErrors.ErrConflict, "student is already enrolled")
		}
		if !exists {
			student = models.Student{
				DocumentNumber:   ident.DocumentNumber,
				StudentCode:      fmt.Sprintf("S%d%s", s.cfg.AcademicYear, ident.DocumentNumber),
				PaternalLastName: ident.PaternalLastName,
				MaternalLastName: ident.MaternalLastName,
				Names:            ident.Names,
				FullName:         models.ComposeFullName(ident.PaternalLastName, ident.MaternalLastName, ident.Names),
				Gender:           ident.Gender,
				BirthDate:        ident.BirthDate,
				Sede:             "Norte",
				TutorIDs:         []string{},
				Tags:             []string{},
			}
		}
		student.Grade = placement.Grade
		student.Section = placement.Section
		student.Shift = placement.Shift
		student.EnrollmentType = placement.Type
		student.Condition = placement.Condition
		student.Exonerations = placement.Exonerations
		student.EnrollmentStatus = models.EnrollmentStatusEnrolled
		student.Status = models.UserStatusForEnrollment(student.EnrollmentStatus)
		enrolled = student
		return store.UpsertStudent(st, student), nil
	})
	return enrolled, err
}
