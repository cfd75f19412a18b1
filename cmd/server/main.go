package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-registry-validator/internal/adapter"
	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/handler"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/server"
	"github.com/MKhiriev/go-registry-validator/internal/service"
	"github.com/MKhiriev/go-registry-validator/internal/store"
	"github.com/MKhiriev/go-registry-validator/internal/validators"
	"github.com/MKhiriev/go-registry-validator/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registry-validator")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to lookup database")
	}
	defer db.Close()

	repositories := store.NewRepositories(db, log)

	codeCache := store.NewCodeCache(repositories.Codes, log)
	if err = codeCache.Refresh(ctx); err != nil {
		// lookups fall back to the database until a refresh succeeds
		log.Warn().Err(err).Msg("initial code cache load failed")
	}

	lookups := repositories.Lookups(codeCache)
	if cfg.Adapter.TaxonomyURL != "" {
		taxonomy, err := adapter.NewHTTPTaxonomyAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating taxonomy adapter")
		}
		lookups.Taxonomy = taxonomy
	}

	engine := validators.NewOrchestrator(lookups, validators.Limits{
		MaxServiceClasses: cfg.Validation.MaxServiceClasses,
		MaxOntologyTerms:  cfg.Validation.MaxOntologyTerms,
		MaxLifeEvents:     cfg.Validation.MaxLifeEvents,
	}, log)

	services, err := service.NewServices(engine, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(log,
		workers.NewCodeCacheRefresher(codeCache, cfg.Workers, log),
	)
	workersDone := make(chan struct{})
	go func() {
		backgroundWorkers.Run(ctx)
		close(workersDone)
	}()

	if err = serve(ctx, stop, servers.Run, workersDone); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// serve runs the servers until they stop, then cancels ctx and waits for the
// workers. It returns the servers' error.
func serve(ctx context.Context, stop context.CancelFunc, run func(context.Context) error, workersDone <-chan struct{}) error {
	err := run(ctx)
	stop()
	<-workersDone
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
