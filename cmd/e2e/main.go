package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/config"
	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/factory"
	"bitbucket.org/crgw/reservations-e2e/internal/scenario"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/caching"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/client"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/client/tokenprovider"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/logger"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/redisfactory"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const clientName = "reservations-e2e"

// selectScenarios keeps the scenarios named on the command line, or all of
// them when no name is given.
func selectScenarios(scenarios []scenario.Scenario, names []string) []scenario.Scenario {
	if len(names) == 0 {
		return scenarios
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]scenario.Scenario, 0, len(names))
	for _, s := range scenarios {
		if wanted[s.Name] {
			selected = append(selected, s)
		}
	}

	return selected
}

func e2eApp(ctx context.Context, cfg *config.Config, names []string, log *zerolog.Logger) int {
	redisFactory, err := redisfactory.New(cfg.TokenCacheRedisURI)
	if err != nil {
		log.Error().Err(err).Msg("Unable to connect to token cache")
		return 1
	}
	defer redisFactory.Close()

	tokenCache := caching.NewMemoryCache()
	if redisClient := redisFactory.TokenCacheClient(); redisClient != nil {
		tokenCache = caching.NewRedisCache(redisClient)
	}

	tokens := tokenprovider.New(
		cfg.Credentials(),
		tokenCache,
		log,
		client.WithName(clientName),
		client.WithTimeout(cfg.RequestTimeout),
	)

	scenarios, err := scenario.Load(cfg.ScenarioFile)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.ScenarioFile).Msg("Unable to load scenarios")
		return 1
	}

	scenarios = selectScenarios(scenarios, names)
	if len(scenarios) == 0 {
		log.Error().Strs("names", names).Msg("No scenario matches")
		return 1
	}

	workflow := scenario.NewWorkflow(
		factory.NewFactory(passenger.NewFakePersons(time.Now().UnixNano())),
		cfg,
		tokens,
		cfg.Accounts.Configuration,
		cfg.RequestTimeout,
	)
	runner := scenario.NewRunner(workflow, cfg.Workers, scenario.NewReporter(cfg.ReportDir), log)

	failed := 0
	for _, outcome := range runner.RunAll(ctx, scenarios) {
		if !outcome.Passed() {
			failed++
		}
	}

	log.Info().
		Int("total", len(scenarios)).
		Int("failed", failed).
		Str("reports", cfg.ReportDir).
		Msg("Run finished")

	if failed > 0 {
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load("environment.env")
	_ = godotenv.Load(".env")
	log := logger.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := e2eApp(ctx, cfg, os.Args[1:], log)
	stop()

	os.Exit(code)
}
