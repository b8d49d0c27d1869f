package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/matricula-dashboard-api/api/swagger"
	"github.com/noah-isme/matricula-dashboard-api/internal/attendance"
	"github.com/noah-isme/matricula-dashboard-api/internal/repository"
	"github.com/noah-isme/matricula-dashboard-api/internal/seed"
	"github.com/noah-isme/matricula-dashboard-api/internal/service"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	"github.com/noah-isme/matricula-dashboard-api/pkg/cache"
	"github.com/noah-isme/matricula-dashboard-api/pkg/config"
	"github.com/noah-isme/matricula-dashboard-api/pkg/export"
	"github.com/noah-isme/matricula-dashboard-api/pkg/jobs"
	"github.com/noah-isme/matricula-dashboard-api/pkg/logger"
	"github.com/noah-isme/matricula-dashboard-api/pkg/storage"
)

// @title Matricula Dashboard API
// @version 1.0.0
// @description School administration dashboard: enrollment, users, attendance, calendar and documents.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ready atomic.Bool

	seedValue := cfg.Roster.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	dataset := seed.Generate(rand.New(rand.NewSource(seedValue)), seed.Options{
		AcademicYear: cfg.Documents.AcademicYear,
		Students:     cfg.Roster.Students,
		Parents:      cfg.Roster.Parents,
		Staff:        cfg.Roster.Staff,
	})
	roster := store.New(store.State{
		Students: dataset.Students,
		Staff:    dataset.Staff,
		Parents:  dataset.Parents,
		Events:   dataset.Events,
	})
	logr.Info("roster seeded",
		zap.Int64("seed", seedValue),
		zap.Int("students", len(dataset.Students)),
		zap.Int("staff", len(dataset.Staff)),
		zap.Int("parents", len(dataset.Parents)),
		zap.Int("events", len(dataset.Events)),
	)

	metrics := service.NewMetricsService()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, attendance cache disabled", zap.Error(err))
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(
		cacheRepo,
		metrics,
		cfg.Attendance.CacheTTL,
		logr,
		redisClient != nil,
	)

	validate := validator.New()
	documents := export.NewDocumentRenderer(export.School{
		Name:         cfg.Documents.SchoolName,
		City:         cfg.Documents.City,
		AcademicYear: cfg.Documents.AcademicYear,
	})

	files, err := storage.NewLocalStorage(cfg.Documents.StorageDir)
	if err != nil {
		logr.Fatal("failed to init document storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Documents.SignedURLSecret, cfg.Documents.SignedURLTTL)

	services := services{
		enrollment: service.NewEnrollmentService(roster, dataset.Catalog, validate, metrics, logr,
			service.EnrollmentConfig{PageSize: cfg.Pagination.EnrollmentPageSize, AcademicYear: cfg.Documents.AcademicYear},
			export.NewCSVExporter(), export.NewPDFExporter(cfg.Documents.SchoolName)),
		wizard: service.NewWizardService(roster, dataset.Catalog, validate, metrics, logr, service.WizardConfig{
			SessionTTL:   cfg.Wizard.SessionTTL,
			AcademicYear: cfg.Documents.AcademicYear,
			APIPrefix:    cfg.APIPrefix,
		}),
		users:    service.NewUserService(roster, validate, metrics, logr),
		calendar: service.NewCalendarService(roster, validate, logr),
		attendance: service.NewAttendanceService(roster, dataset.Catalog,
			attendance.NewGenerator(rand.New(rand.NewSource(seedValue+1)), logr),
			cacheSvc, documents, validate, metrics, logr, service.AttendanceConfig{
				FetchDelay: cfg.Attendance.FetchDelay,
				CacheTTL:   cfg.Attendance.CacheTTL,
			}),
		documents: service.NewDocumentService(roster, documents, files, signer, metrics, logr,
			service.DocumentConfig{APIPrefix: cfg.APIPrefix}),
		activity: service.NewActivityService(roster, cfg.Activity.MaxEntries, logr),
		metrics:  metrics,
	}

	idCards := jobs.NewQueue("id-cards", services.documents.Process, jobs.QueueConfig{
		Workers:    cfg.Documents.WorkerConcurrency,
		MaxRetries: cfg.Documents.WorkerRetries,
		RetryDelay: 2 * time.Second,
		JobTimeout: time.Minute,
		OnFailure:  services.documents.Fail,
		Observer: func(job jobs.Job, took time.Duration, err error) {
			metrics.ObserveDocumentJob(job.Type, took, err)
		},
		Logger: logr,
	})
	idCards.Start(ctx)
	defer idCards.Stop()
	services.documents.AttachQueue(idCards)
	go sweepDocuments(ctx, files, services.documents, cfg.Documents.SignedURLTTL, logr)

	r := newRouter(cfg, logr, services, func() bool {
		if !ready.Load() {
			return false
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return cacheRepo.Ping(pingCtx) == nil
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logr.Warn("server shutdown", zap.Error(err))
		}
	}()

	ready.Store(true)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
	logr.Info("server stopped")
}

// sweepDocuments removes generated files and settled job records once their
// download links expired.
func sweepDocuments(ctx context.Context, files *storage.LocalStorage, docs *service.DocumentService, ttl time.Duration, logr *zap.Logger) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pruned := docs.PruneJobs(ttl); pruned > 0 {
				logr.Info("expired document jobs pruned", zap.Int("count", pruned))
			}
			deleted, err := files.CleanupOlderThan(ttl)
			if err != nil {
				logr.Warn("document cleanup failed", zap.Error(err))
				continue
			}
			if len(deleted) > 0 {
				logr.Info("expired documents removed", zap.Int("count", len(deleted)))
			}
		}
	}
}
