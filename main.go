package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cavalaria/backend/internal/auth"
	"github.com/cavalaria/backend/internal/config"
	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/docgen"
	"github.com/cavalaria/backend/internal/fleet"
	"github.com/cavalaria/backend/internal/models"
	"github.com/cavalaria/backend/internal/router"
	"github.com/cavalaria/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			Cavalaria Backend
// @description	The backend for the cavalry unit administration.
// @license.name	AGPL-3.0
func main() {
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

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the data directory for the sqlite database
	err = os.MkdirAll(filepath.Dir(cfg.DatabaseFile), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.DatabaseFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	routerConfig := router.Config{
		Documents: v1.DocumentController{
			Generator: docgen.New(cfg.DocumentTemplate),
			Vehicles:  fleet.NewCache(30 * time.Second),
		},
	}

	// Document archiving is optional
	if cfg.Archive.Endpoint != "" {
		archive, err := storage.NewArchive(
			cfg.Archive.Endpoint,
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			cfg.Archive.Bucket,
			cfg.Archive.UseSSL,
		)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		routerConfig.Documents.Archive = archive
	}

	// Authentication is only enabled when a secret is configured
	if cfg.JWT.Secret != "" {
		routerConfig.Issuer = auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

		if cfg.Redis.Addr != "" {
			routerConfig.Blacklist = auth.NewBlacklist(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			defer routerConfig.Blacklist.Close()
		}
	} else {
		log.Warn().Msg("no JWT secret configured, authentication is disabled")
	}

	r, err := router.Router(routerConfig)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(cfg.ListenAddress); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
