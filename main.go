package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	api "github.com/rpupo63/portfolio-site-backend/api"
	"github.com/rpupo63/portfolio-site-backend/cache"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/likes"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/sanity"
)

// contentStore is what both backends provide.
type contentStore interface {
	content.Store
	content.LikeStore
}

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := config.New()
	ssmLoaded := 0
	ssmPath := config.GetString(c, "SSM_PARAMETER_PATH", "")
	var ssmErr error
	if ssmPath != "" {
		ssmLoaded, ssmErr = config.LoadSSM(ctx, c, ssmPath)
	}

	settings, err := config.Load(c)
	setupLogger(settings)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded")
	}
	if ssmErr != nil {
		log.Fatal().Err(ssmErr).Str("path", ssmPath).Msg("Error loading SSM parameters")
	}
	if ssmPath != "" {
		log.Info().Int("count", ssmLoaded).Str("path", ssmPath).Msg("Loaded SSM parameters")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	store, closeStore, done := openStore(ctx, settings)
	if done {
		return
	}
	defer closeStore()

	images, err := newImageResolver(ctx, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating image resolver")
	}

	resultCache, closeCache := newCache(ctx, settings)
	defer closeCache()

	contentService := content.NewService(store, images, resultCache,
		content.WithCacheTTL(settings.CacheTTL),
		content.WithLogger(log.With().Str("component", "content").Logger()),
	)
	likeService := likes.NewService(store)

	errChannel := make(chan error)
	defer close(errChannel)

	server := api.NewServer(settings, contentService, likeService)
	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogger(settings config.Settings) {
	level, err := zerolog.ParseLevel(strings.ToLower(settings.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if settings.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// openStore connects the configured content backend. done is true when the
// process ran a one-off task (query generation) and should exit.
func openStore(ctx context.Context, settings config.Settings) (store contentStore, closeFn func(), done bool) {
	if settings.ContentStore == config.StoreSanity {
		client, err := sanity.New(sanity.Config{
			ProjectID:  settings.SanityProjectID,
			Dataset:    settings.SanityDataset,
			APIVersion: settings.SanityAPIVersion,
			Token:      settings.SanityToken,
			UseCDN:     settings.SanityUseCDN,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating Sanity client")
		}
		log.Info().Str("project", settings.SanityProjectID).Str("dataset", settings.SanityDataset).Msg("Using Sanity content store")
		return client, func() {}, false
	}

	logger := log.With().Str("component", "database").Logger()
	db, err := database.Open(settings.DatabaseURL, settings.DatabaseReplicaURLs, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)

	if err := currentDB.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	if settings.GenerateQueries {
		log.Info().Msg("Generating query helpers...")
		if err := models.GenerateQueries(db, "./generated"); err != nil {
			log.Fatal().Err(err).Msg("Error generating query helpers")
		}
		mismatches, err := models.ColumnMismatches(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Error checking columns")
		}
		models.WriteColumnReport(os.Stdout, mismatches)
		currentDB.Close()
		return nil, nil, true
	}

	if settings.AutoMigrate {
		if err := currentDB.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
	}

	mismatches, err := models.ColumnMismatches(db)
	if err != nil {
		log.Warn().Err(err).Msg("Could not check table columns")
	}
	for table, columns := range mismatches {
		log.Warn().Str("table", table).Strs("columns", columns).Msg("Columns not mapped by any record field")
	}

	if settings.SeedFile != "" {
		if err := seed(ctx, currentDB, settings.SeedFile); err != nil {
			log.Fatal().Err(err).Str("file", settings.SeedFile).Msg("Error importing seed documents")
		}
	}

	log.Info().Int("replicas", len(settings.DatabaseReplicaURLs)).Msg("Using Postgres content store")
	return currentDB, func() { currentDB.Close() }, false
}

func seed(ctx context.Context, db database.Database, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	docs, err := database.DecodeDocuments(f)
	if err != nil {
		return err
	}
	result, err := db.Import(ctx, docs)
	if err != nil {
		return err
	}
	log.Info().
		Int("projects", result.Projects).
		Int("blogs", result.Blogs).
		Int("about", result.About).
		Msg("Imported seed documents")
	return nil
}

func newImageResolver(ctx context.Context, settings config.Settings) (content.ImageResolver, error) {
	if settings.ImageBackend == config.ImagesS3 {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return content.NewS3ImageResolver(s3.NewFromConfig(cfg), settings.S3Bucket, settings.S3PresignTTL), nil
	}
	return content.NewSanityImageResolver(settings.SanityProjectID, settings.SanityDataset), nil
}

// newCache prefers Redis when REDIS_URL is set and falls back to an
// in-process cache when it is unset or unreachable.
func newCache(ctx context.Context, settings config.Settings) (cache.Cache, func()) {
	if settings.RedisURL == "" {
		return cache.NewMemory(), func() {}
	}

	redisCache, err := cache.NewRedisFromURL(settings.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid REDIS_URL, using in-memory cache")
		return cache.NewMemory(), func() {}
	}
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, using in-memory cache")
		redisCache.Close()
		return cache.NewMemory(), func() {}
	}
	log.Info().Msg("Using Redis result cache")
	return redisCache, func() { redisCache.Close() }
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
