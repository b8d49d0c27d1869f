package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/export"
	"github.com/noah-isme/matricula-dashboard-api/pkg/jobs"
	"github.com/noah-isme/matricula-dashboard-api/pkg/storage"
)

const (
	documentKindIDCards = "id_cards"
	contentTypePDF      = "application/pdf"
)

type documentRenderer interface {
	EnrollmentForm(s models.Student) ([]byte, error)
	Certificate(s models.Student, issued time.Time) ([]byte, error)
	IDCards(students []models.Student) ([]byte, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Read(filename string) ([]byte, error)
}

type tokenSigner interface {
	Generate(jobID, relPath string) (string, time.Time, error)
	Parse(token string) (jobID, relPath string, expiresAt time.Time, err error)
}

type jobQueue interface {
	Enqueue(job jobs.Job) error
}

// DocumentConfig configures document downloads.
type DocumentConfig struct {
	APIPrefix string
}

// DocumentService renders student documents and runs bulk ID card jobs.
type DocumentService struct {
	roster   rosterStore
	renderer documentRenderer
	storage  fileStorage
	signer   tokenSigner
	queue    jobQueue
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      DocumentConfig
	now      func() time.Time

	mu   sync.RWMutex
	jobs map[string]models.DocumentJob
}

// NewDocumentService constructs the service. The bulk queue is attached with
// AttachQueue because its handler is the service itself.
func NewDocumentService(roster rosterStore, renderer documentRenderer, storage fileStorage, signer tokenSigner, metrics *MetricsService, logger *zap.Logger, cfg DocumentConfig) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}
	return &DocumentService{
		roster:   roster,
		renderer: renderer,
		storage:  storage,
		signer:   signer,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
		jobs:     make(map[string]models.DocumentJob),
	}
}

// AttachQueue sets the queue bulk jobs are dispatched on.
func (s *DocumentService) AttachQueue(q jobQueue) {
	s.queue = q
}

func (s *DocumentService) student(dni string) (models.Student, error) {
	st, ok := s.roster.Snapshot().FindStudent(dni)
	if !ok {
		return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return st, nil
}

// EnrollmentForm renders the student's Ficha Única de Matrícula.
func (s *DocumentService) EnrollmentForm(ctx context.Context, dni string) (*dto.ExportFile, error) {
	st, err := s.student(dni)
	if err != nil {
		return nil, err
	}
	payload, err := s.renderer.EnrollmentForm(st)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render enrollment form")
	}
	s.metrics.RecordDocument("enrollment_form")
	return &dto.ExportFile{Filename: export.EnrollmentFormFilename(dni), ContentType: contentTypePDF, Payload: payload}, nil
}

// Certificate renders the student's enrollment certificate dated today.
func (s *DocumentService) Certificate(ctx context.Context, dni string) (*dto.ExportFile, error) {
	st, err := s.student(dni)
	if err != nil {
		return nil, err
	}
	payload, err := s.renderer.Certificate(st, s.now())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render certificate")
	}
	s.metrics.RecordDocument("certificate")
	return &dto.ExportFile{Filename: export.CertificateFilename(dni), ContentType: contentTypePDF, Payload: payload}, nil
}

// EnqueueIDCards queues ID card generation for the selected users.
// Non-student selections are ignored; at least one student is required.
func (s *DocumentService) EnqueueIDCards(ctx context.Context, req dto.BulkUsersRequest) (*models.DocumentJob, error) {
	if len(req.DNIs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "select at least one student")
	}
	if s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "document queue unavailable")
	}
	state := s.roster.Snapshot()
	dnis := make([]string, 0, len(req.DNIs))
	for _, dni := range req.DNIs {
		if _, ok := state.FindStudent(dni); ok {
			dnis = append(dnis, dni)
		}
	}
	if len(dnis) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "selection contains no students")
	}

	job := models.DocumentJob{
		ID:        uuid.NewString(),
		Kind:      documentKindIDCards,
		DNIs:      dnis,
		Status:    models.DocumentJobQueued,
		CreatedAt: s.now().UTC(),
	}
	s.store(job)
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: job.Kind, Payload: dnis}); err != nil {
		s.mark(job.ID, func(j *models.DocumentJob) {
			j.Status = models.DocumentJobFailed
			j.Error = err.Error()
		})
		if errors.Is(err, jobs.ErrQueueFull) {
			return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "document queue is busy, retry shortly")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue id cards")
	}
	s.logger.Info("id card job queued", zap.String("job_id", job.ID), zap.Int("students", len(dnis)))
	return &job, nil
}

// Process is the queue handler for bulk document jobs.
func (s *DocumentService) Process(ctx context.Context, job jobs.Job) error {
	dnis, ok := job.Payload.([]string)
	if !ok {
		return fmt.Errorf("job %s: unexpected payload %T", job.ID, job.Payload)
	}
	s.mark(job.ID, func(j *models.DocumentJob) { j.Status = models.DocumentJobProcessing })

	state := s.roster.Snapshot()
	students := make([]models.Student, 0, len(dnis))
	for _, dni := range dnis {
		if st, ok := state.FindStudent(dni); ok {
			students = append(students, st)
		}
	}
	payload, err := s.renderer.IDCards(students)
	if err != nil {
		return fmt.Errorf("render id cards: %w", err)
	}
	relPath, err := s.storage.Save(fmt.Sprintf("%s/%s", job.ID, export.IDCardsFilename), payload)
	if err != nil {
		return err
	}
	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return err
	}

	finished := s.now().UTC()
	link := fmt.Sprintf("%s/documents/download?token=%s", strings.TrimRight(s.cfg.APIPrefix, "/"), url.QueryEscape(token))
	s.mark(job.ID, func(j *models.DocumentJob) {
		j.Status = models.DocumentJobFinished
		j.Error = ""
		j.DownloadURL = link
		j.ExpiresAt = &expiresAt
		j.FinishedAt = &finished
	})
	s.metrics.RecordDocument(documentKindIDCards)
	s.logger.Info("id card job finished", zap.String("job_id", job.ID), zap.Int("students", len(students)))
	return nil
}

// Fail marks a job that exhausted its retries.
func (s *DocumentService) Fail(job jobs.Job, err error) {
	finished := s.now().UTC()
	s.mark(job.ID, func(j *models.DocumentJob) {
		j.Status = models.DocumentJobFailed
		j.Error = err.Error()
		j.FinishedAt = &finished
	})
}

// Job returns the state of a bulk job.
func (s *DocumentService) Job(ctx context.Context, id string) (*models.DocumentJob, error) {
	s.mu.RLock()
	job, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "document job not found")
	}
	return &job, nil
}

// Download resolves a signed token to the stored file.
func (s *DocumentService) Download(ctx context.Context, token string) (*dto.ExportFile, error) {
	_, relPath, _, err := s.signer.Parse(token)
	switch {
	case errors.Is(err, storage.ErrTokenExpired):
		return nil, appErrors.Clone(appErrors.ErrGone, "download link expired")
	case err != nil:
		return nil, appErrors.Clone(appErrors.ErrNotFound, "download link is not valid")
	}
	payload, err := s.storage.Read(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "document no longer available")
	}
	return &dto.ExportFile{Filename: export.IDCardsFilename, ContentType: contentTypePDF, Payload: payload}, nil
}

// PruneJobs forgets finished or failed jobs settled more than ttl ago and
// returns how many were dropped. Queued and processing jobs are kept.
func (s *DocumentService) PruneJobs(ttl time.Duration) int {
	cutoff := s.now().UTC().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, job := range s.jobs {
		if job.FinishedAt == nil || job.FinishedAt.After(cutoff) {
			continue
		}
		delete(s.jobs, id)
		pruned++
	}
	return pruned
}

func (s *DocumentService) store(job models.DocumentJob) {
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
}

func (s *DocumentService) mark(id string, fn func(*models.DocumentJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	fn(&job)
	s.jobs[id] = job
}
