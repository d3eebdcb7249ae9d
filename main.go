package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/basketwise/backend/internal/auth"
	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, the environment always takes precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			log.Fatal().Str("LOG_LEVEL", level).Msg("invalid log level")
		}
		zerolog.SetGlobalLevel(parsed)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	// Create the data directory
	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = filepath.Join(".", "data", "gorm.db")
	}

	err = os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	adminEmail, emailSet := os.LookupEnv("ADMIN_EMAIL")
	adminToken, tokenSet := os.LookupEnv("ADMIN_TOKEN")
	if emailSet && tokenSet {
		admin, err := auth.Bootstrap(adminEmail, adminToken)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		log.Info().Str("email", admin.Email).Msg("Admin user ready")
	}

	if amqpURL, ok := os.LookupEnv("AMQP_URL"); ok {
		exchange, ok := os.LookupEnv("AMQP_EXCHANGE")
		if !ok {
			exchange = "basketwise"
		}

		publisher, err := events.NewAMQPPublisher(amqpURL, exchange)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		events.SetPublisher(publisher)
		defer publisher.Close()
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group(url.Path))

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Msg(err.Error())
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}
