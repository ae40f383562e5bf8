package main

import (
	"context"
	"os"
	"time"

	_ "travelmap-api/docs"
	"travelmap-api/internal/config"
	"travelmap-api/internal/handler"
	"travelmap-api/internal/mapview"
	"travelmap-api/internal/repository"
	"travelmap-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Travel Map API
// @version      1.0
// @description  Place search around a geocoded location with an interactive map, travel videos and account storage.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config.Environment, config.LogLevel)

	accountStore, closeStore := newAccountStore(config.DBSource, config.AccountsFile)
	defer closeStore()

	// Initialize layers
	geocoder := repository.NewNominatimClient(config.NominatimURL, config.UserAgent, config.GeocodeTimeout)
	poiFetcher := repository.NewOverpassRepository(config.OverpassURL, config.UserAgent, config.POITimeout)
	videoRepo := repository.NewInvidiousRepository(config.InvidiousInstances, config.VideoTimeout)

	searchService := service.NewSearchService(geocoder, poiFetcher, mapview.NewRenderer(), service.DefaultCatalog())
	videoService := service.NewVideoService(videoRepo)
	accountService := service.NewAccountService(accountStore)

	if config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handler.NewRouter(handler.RouterConfig{
		CORSOrigins: config.CORSOrigins,
		StaticDir:   config.StaticDir,
	}, handler.Handlers{
		Search:   handler.NewSearchHandler(searchService),
		Videos:   handler.NewVideoHandler(videoService),
		Accounts: handler.NewAccountHandler(accountService),
	})

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(environment, level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	// requests without a request ID logger still log through the global one
	zerolog.DefaultContextLogger = &log.Logger
}

// newAccountStore uses PostgreSQL when a DB source is configured and the JSON file otherwise.
func newAccountStore(dbSource, accountsFile string) (service.AccountStore, func()) {
	if dbSource == "" {
		log.Info().Str("file", accountsFile).Msg("using file account store")
		return repository.NewFileAccountStore(accountsFile), func() {}
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	store := repository.NewPostgresAccountStore(conn)
	if err := store.EnsureSchema(context.Background()); err != nil {
		conn.Close()
		log.Fatal().Err(err).Msg("cannot prepare accounts table")
	}

	log.Info().Msg("using postgres account store")
	return store, conn.Close
}
