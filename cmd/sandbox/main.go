//go:build !integration

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/crgw/reservations-e2e/internal/config"
	"bitbucket.org/crgw/reservations-e2e/internal/sandbox"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/logger"
	"bitbucket.org/crgw/reservations-e2e/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down sandbox...")
		_ = httpServer.Shutdown(context.Background())
	}()

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Sandbox failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load("environment.env")
	_ = godotenv.Load(".env")

	cfg := config.LoadSandbox(os.Getenv)
	log := logger.New(cfg.LogLevel)

	appRouter := web.SetupRouter(log, sandbox.New(cfg.SigningKey))

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: appRouter,
	}

	os.Exit(serverApp(httpServer, log))
}
