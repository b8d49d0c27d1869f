package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/jobs"
	"github.com/noah-isme/matricula-dashboard-api/pkg/storage"
)

type stubDocumentRenderer struct {
	cards   []models.Student
	failIDs bool
}

func (r *stubDocumentRenderer) EnrollmentForm(s models.Student) ([]byte, error) {
	return []byte("FUM " + s.DocumentNumber), nil
}

func (r *stubDocumentRenderer) Certificate(s models.Student, issued time.Time) ([]byte, error) {
	return []byte("CONSTANCIA " + s.DocumentNumber), nil
}

func (r *stubDocumentRenderer) IDCards(students []models.Student) ([]byte, error) {
	if r.failIDs {
		return nil, errors.New("renderer down")
	}
	r.cards = students
	return []byte("CARDS"), nil
}

func newDocumentService(t *testing.T, renderer *stubDocumentRenderer, retries int) (*DocumentService, *jobs.Queue) {
	t.Helper()
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Minute)
	svc := NewDocumentService(fixtureStore(), renderer, local, signer, NewMetricsService(), zap.NewNop(), DocumentConfig{})
	queue := jobs.NewQueue("documents", svc.Process, jobs.QueueConfig{
		Workers:    1,
		MaxRetries: retries,
		RetryDelay: 10 * time.Millisecond,
		OnFailure:  svc.Fail,
	})
	svc.AttachQueue(queue)
	queue.Start(context.Background())
	t.Cleanup(queue.Stop)
	return svc, queue
}

func waitForJob(t *testing.T, svc *DocumentService, id string, status models.DocumentJobStatus) *models.DocumentJob {
	t.Helper()
	var job *models.DocumentJob
	require.Eventually(t, func() bool {
		var err error
		job, err = svc.Job(context.Background(), id)
		return err == nil && job.Status == status
	}, 2*time.Second, 10*time.Millisecond)
	return job
}

func TestDocumentSingleStudentDocuments(t *testing.T) {
	svc, _ := newDocumentService(t, &stubDocumentRenderer{}, 0)
	ctx := context.Background()

	file, err := svc.EnrollmentForm(ctx, "70000001")
	require.NoError(t, err)
	assert.Equal(t, "Ficha_Matricula_70000001.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)

	file, err = svc.Certificate(ctx, "70000002")
	require.NoError(t, err)
	assert.Equal(t, "CONSTANCIA 70000002", string(file.Payload))

	_, err = svc.EnrollmentForm(ctx, "11111111")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestDocumentIDCardJobLifecycle(t *testing.T) {
	renderer := &stubDocumentRenderer{}
	svc, _ := newDocumentService(t, renderer, 0)
	ctx := context.Background()

	job, err := svc.EnqueueIDCards(ctx, dto.BulkUsersRequest{DNIs: []string{"70000001", "40000001", "70000003"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"70000001", "70000003"}, job.DNIs)

	done := waitForJob(t, svc, job.ID, models.DocumentJobFinished)
	require.Len(t, renderer.cards, 2)
	require.NotNil(t, done.ExpiresAt)
	require.True(t, strings.HasPrefix(done.DownloadURL, "/api/v1/documents/download?token="))

	parsed, err := url.Parse(done.DownloadURL)
	require.NoError(t, err)
	file, err := svc.Download(ctx, parsed.Query().Get("token"))
	require.NoError(t, err)
	assert.Equal(t, "CARDS", string(file.Payload))
	assert.Equal(t, "Carnets_Escolares.pdf", file.Filename)

	_, err = svc.Download(ctx, "forged.token.value.sig")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestDocumentExpiredDownload(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Nanosecond)
	svc := NewDocumentService(fixtureStore(), &stubDocumentRenderer{}, local, signer, nil, nil, DocumentConfig{})

	rel, err := local.Save("job/cards.pdf", []byte("x"))
	require.NoError(t, err)
	token, _, err := signer.Generate("job", rel)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.Download(context.Background(), token)
	assert.ErrorIs(t, err, appErrors.ErrGone)
}

func TestDocumentIDCardJobFailure(t *testing.T) {
	svc, _ := newDocumentService(t, &stubDocumentRenderer{failIDs: true}, 1)

	job, err := svc.EnqueueIDCards(context.Background(), dto.BulkUsersRequest{DNIs: []string{"70000002"}})
	require.NoError(t, err)

	failed := waitForJob(t, svc, job.ID, models.DocumentJobFailed)
	assert.Contains(t, failed.Error, "renderer down")
	assert.NotNil(t, failed.FinishedAt)
}

func TestDocumentEnqueueRejectsNonStudents(t *testing.T) {
	svc, _ := newDocumentService(t, &stubDocumentRenderer{}, 0)

	_, err := svc.EnqueueIDCards(context.Background(), dto.BulkUsersRequest{DNIs: []string{"40000001"}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Job(context.Background(), "unknown")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

type busyQueue struct{}

func (busyQueue) Enqueue(jobs.Job) error {
	return jobs.ErrQueueFull
}

func TestDocumentEnqueueWhenQueueBusy(t *testing.T) {
	svc, _ := newDocumentService(t, &stubDocumentRenderer{}, 0)
	svc.AttachQueue(busyQueue{})

	_, err := svc.EnqueueIDCards(context.Background(), dto.BulkUsersRequest{DNIs: []string{"70000001"}})
	assert.ErrorIs(t, err, appErrors.ErrUnavailable)
}

func TestDocumentPruneJobsDropsSettledJobs(t *testing.T) {
	svc, _ := newDocumentService(t, &stubDocumentRenderer{}, 0)
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	finished := base.Add(-2 * time.Hour)
	recent := base.Add(-10 * time.Minute)
	svc.store(models.DocumentJob{ID: "old-done", Status: models.DocumentJobFinished, FinishedAt: &finished})
	svc.store(models.DocumentJob{ID: "old-failed", Status: models.DocumentJobFailed, FinishedAt: &finished})
	svc.store(models.DocumentJob{ID: "recent", Status: models.DocumentJobFinished, FinishedAt: &recent})
	svc.store(models.DocumentJob{ID: "queued", Status: models.DocumentJobQueued, CreatedAt: finished})

	assert.Equal(t, 2, svc.PruneJobs(time.Hour))

	ctx := context.Background()
	_, err := svc.Job(ctx, "old-done")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = svc.Job(ctx, "old-failed")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = svc.Job(ctx, "recent")
	assert.NoError(t, err)
	_, err = svc.Job(ctx, "queued")
	assert.NoError(t, err)

	assert.Zero(t, svc.PruneJobs(time.Hour))
}
