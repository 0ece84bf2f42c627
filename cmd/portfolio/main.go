package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yoones-dev/portfolio-api/db"
	"github.com/yoones-dev/portfolio-api/internal/auth"
	"github.com/yoones-dev/portfolio-api/internal/handlers"
	"github.com/yoones-dev/portfolio-api/internal/router"
	"github.com/yoones-dev/portfolio-api/internal/services"
	"github.com/yoones-dev/portfolio-api/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT secret")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	store, err := storage.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize asset storage")
	}

	h := handlers.New(
		services.NewUserService(db.DB),
		services.NewFrameworkService(db.DB, store),
		services.NewProjectService(db.DB, store),
		services.NewMessageService(db.DB),
		store,
	)

	r := router.NewRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		log.Info().Msg("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
