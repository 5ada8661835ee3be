package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spendlog/backend/internal/fixtures"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			Spendlog Backend
// @description	The backend for Spendlog, a personal expense tracker.

func main() {
	// A .env file is optional, variables already set in the
	// environment take precedence
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
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("API_URL is not a valid URL")
	}

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dataDir := filepath.Join(".", "data")
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
		dbPath = filepath.Join(dataDir, "spendlog.db")
	}

	err = models.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if loadFixtures, ok := os.LookupEnv("LOAD_FIXTURES"); ok && loadFixtures == "true" {
		if err := fixtures.Load(models.DB); err != nil {
			log.Fatal().Msg(err.Error())
		}
		log.Info().Msg("demo fixtures loaded")
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
