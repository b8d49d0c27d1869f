package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Roster     RosterConfig
	Pagination PaginationConfig
	Attendance AttendanceConfig
	Wizard     WizardConfig
	Documents  DocumentsConfig
	Activity   ActivityConfig
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// RosterConfig drives the in-memory data generator.
type RosterConfig struct {
	Seed     int64
	Students int
	Parents  int
	Staff    int
}

// PaginationConfig holds fixed page sizes for the dashboard tables.
type PaginationConfig struct {
	EnrollmentPageSize int
	UsersPageSize      int
	UsersMaxPageSize   int
}

// AttendanceConfig tunes the simulated attendance feed.
type AttendanceConfig struct {
	FetchDelay time.Duration
	CacheTTL   time.Duration
}

// WizardConfig controls enrollment wizard session lifetime.
type WizardConfig struct {
	SessionTTL time.Duration
}

// DocumentsConfig configures generated PDF documents and bulk downloads.
type DocumentsConfig struct {
	SchoolName        string
	City              string
	AcademicYear      int
	StorageDir        string
	SignedURLSecret   string
	SignedURLTTL      time.Duration
	WorkerConcurrency int
	WorkerRetries     int
}

// ActivityConfig bounds the in-memory activity log.
type ActivityConfig struct {
	MaxEntries int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("ENABLE_REDIS"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Roster = RosterConfig{
		Seed:     v.GetInt64("SEED"),
		Students: v.GetInt("SEED_STUDENTS"),
		Parents:  v.GetInt("SEED_PARENTS"),
		Staff:    v.GetInt("SEED_STAFF"),
	}

	cfg.Pagination = PaginationConfig{
		EnrollmentPageSize: positiveOr(v.GetInt("ENROLLMENT_PAGE_SIZE"), 7),
		UsersPageSize:      positiveOr(v.GetInt("USERS_PAGE_SIZE"), 10),
		UsersMaxPageSize:   positiveOr(v.GetInt("USERS_MAX_PAGE_SIZE"), 100),
	}

	cfg.Attendance = AttendanceConfig{
		FetchDelay: parseDuration(v.GetString("ATTENDANCE_FETCH_DELAY"), 500*time.Millisecond),
		CacheTTL:   parseDuration(v.GetString("ATTENDANCE_CACHE_TTL"), time.Minute),
	}

	cfg.Wizard = WizardConfig{
		SessionTTL: parseDuration(v.GetString("WIZARD_SESSION_TTL"), 30*time.Minute),
	}

	cfg.Documents = DocumentsConfig{
		SchoolName:        v.GetString("SCHOOL_NAME"),
		City:              v.GetString("SCHOOL_CITY"),
		AcademicYear:      v.GetInt("ACADEMIC_YEAR"),
		StorageDir:        v.GetString("DOCUMENTS_STORAGE_DIR"),
		SignedURLSecret:   v.GetString("DOCUMENTS_SIGNED_URL_SECRET"),
		SignedURLTTL:      parseDuration(v.GetString("DOCUMENTS_SIGNED_URL_TTL"), time.Hour),
		WorkerConcurrency: v.GetInt("DOCUMENTS_WORKER_CONCURRENCY"),
		WorkerRetries:     v.GetInt("DOCUMENTS_WORKER_RETRIES"),
	}

	cfg.Activity = ActivityConfig{
		MaxEntries: positiveOr(v.GetInt("ACTIVITY_LOG_MAX_ENTRIES"), 500),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ENABLE_REDIS", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED", 0)
	v.SetDefault("SEED_STUDENTS", 1681)
	v.SetDefault("SEED_PARENTS", 800)
	v.SetDefault("SEED_STAFF", 112)

	v.SetDefault("ENROLLMENT_PAGE_SIZE", 7)
	v.SetDefault("USERS_PAGE_SIZE", 10)
	v.SetDefault("USERS_MAX_PAGE_SIZE", 100)

	v.SetDefault("ATTENDANCE_FETCH_DELAY", "500ms")
	v.SetDefault("ATTENDANCE_CACHE_TTL", "1m")
	v.SetDefault("WIZARD_SESSION_TTL", "30m")

	v.SetDefault("SCHOOL_NAME", "IEE 6049 Ricardo Palma")
	v.SetDefault("SCHOOL_CITY", "Lima")
	v.SetDefault("ACADEMIC_YEAR", 2025)
	v.SetDefault("DOCUMENTS_STORAGE_DIR", "./documents")
	v.SetDefault("DOCUMENTS_SIGNED_URL_SECRET", "dev_documents_secret")
	v.SetDefault("DOCUMENTS_SIGNED_URL_TTL", "1h")
	v.SetDefault("DOCUMENTS_WORKER_CONCURRENCY", 2)
	v.SetDefault("DOCUMENTS_WORKER_RETRIES", 3)

	v.SetDefault("ACTIVITY_LOG_MAX_ENTRIES", 500)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
