package config

import (
	"strings"
	"time"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

const (
	StoreSanity   = "sanity"
	StorePostgres = "postgres"

	ImagesSanity = "sanity"
	ImagesS3     = "s3"
)

// Settings is the typed view of the environment the server runs with.
type Settings struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	AcceptedOrigins []string
	RequestTimeout  time.Duration

	ContentStore     string
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string
	SanityUseCDN     bool

	DatabaseURL         string
	DatabaseReplicaURLs []string
	AutoMigrate         bool
	GenerateQueries     bool
	SeedFile            string

	ImageBackend string
	S3Bucket     string
	S3PresignTTL time.Duration

	RedisURL string
	CacheTTL time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads Settings from an environment map built by New, applying
// defaults and checking the keys the selected backends require.
func Load(c map[string]string) (Settings, error) {
	s := Settings{
		Port:            GetString(c, "PORT", "8080"),
		ReadTimeout:     GetSeconds(c, "READ_TIMEOUT_SECONDS", 15*time.Second),
		WriteTimeout:    GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 15*time.Second),
		IdleTimeout:     GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 60*time.Second),
		AcceptedOrigins: GetList(c, "ACCEPTED_ORIGINS"),
		RequestTimeout:  GetSeconds(c, "REQUEST_TIMEOUT_SECONDS", 5*time.Second),

		ContentStore:     strings.ToLower(GetString(c, "CONTENT_STORE", StoreSanity)),
		SanityProjectID:  GetString(c, "SANITY_PROJECT_ID", ""),
		SanityDataset:    GetString(c, "SANITY_DATASET", "production"),
		SanityAPIVersion: GetString(c, "SANITY_API_VERSION", "2024-01-01"),
		SanityToken:      GetString(c, "SANITY_API_TOKEN", ""),
		SanityUseCDN:     GetBool(c, "SANITY_USE_CDN", true),

		DatabaseURL:         GetString(c, "DATABASE_URL", ""),
		DatabaseReplicaURLs: GetList(c, "DATABASE_REPLICA_URLS"),
		AutoMigrate:         GetBool(c, "DB_AUTO_MIGRATE", false),
		GenerateQueries:     GetBool(c, "GENERATE_QUERIES", false),
		SeedFile:            GetString(c, "SEED_FILE", ""),

		ImageBackend: strings.ToLower(GetString(c, "IMAGE_BACKEND", ImagesSanity)),
		S3Bucket:     GetString(c, "S3_BUCKET", ""),
		S3PresignTTL: GetSeconds(c, "S3_PRESIGN_TTL_SECONDS", 15*time.Minute),

		RedisURL: GetString(c, "REDIS_URL", ""),
		CacheTTL: GetSeconds(c, "CACHE_TTL_SECONDS", 60*time.Second),

		LogLevel:  GetString(c, "LOG_LEVEL", "info"),
		LogFormat: GetString(c, "LOG_FORMAT", "console"),
	}
	if len(s.AcceptedOrigins) == 0 {
		s.AcceptedOrigins = []string{"http://localhost:3000"}
	}

	switch s.ContentStore {
	case StoreSanity:
		if s.SanityProjectID == "" {
			return s, errs.NewEnvironmentVariableError("SANITY_PROJECT_ID")
		}
	case StorePostgres:
		if s.DatabaseURL == "" {
			return s, errs.NewEnvironmentVariableError("DATABASE_URL")
		}
	default:
		return s, errs.NewEnvironmentVariableError("CONTENT_STORE")
	}

	switch s.ImageBackend {
	case ImagesSanity:
		if s.SanityProjectID == "" {
			return s, errs.NewEnvironmentVariableError("SANITY_PROJECT_ID")
		}
	case ImagesS3:
		if s.S3Bucket == "" {
			return s, errs.NewEnvironmentVariableError("S3_BUCKET")
		}
	default:
		return s, errs.NewEnvironmentVariableError("IMAGE_BACKEND")
	}

	return s, nil
}
