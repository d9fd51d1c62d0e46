package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/cli"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/journal"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dataDir := flag.String("data-dir", "", "override for the data directory from the config")
	flag.Parse()

	// .env carries the optional secrets (SENTRY_DSN); missing file is fine
	if err := godotenv.Load(); err != nil {
		log.Tracef("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	if cfg.SentryEnabled && sentryDSN == "" {
		log.Warnln("sentry enabled but SENTRY_DSN env var not set")
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: false,
		Environment:   cfg.Environment,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     sentryDSN,
	})

	log.Debugf("using data dir: [%s]", cfg.DataDir)

	usersPath := path.Join(cfg.DataDir, "users")

	accounts, err := auth.NewService(usersPath)
	if err != nil {
		log.Fatalf("create accounts service: %s", err)
	}
	profiles, err := profile.NewStore(usersPath)
	if err != nil {
		log.Fatalf("create profile store: %s", err)
	}
	entries, err := journal.NewStore(usersPath)
	if err != nil {
		log.Fatalf("create journal store: %s", err)
	}

	service := tracker.NewService(accounts, profiles, entries)
	menu := cli.NewMenu(service, os.Stdin, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	menuDone := make(chan error, 1)
	go func() {
		menuDone <- menu.Run(ctx)
	}()

	select {
	case receivedSig := <-chOsInterrupt:
		log.Warnf("signal [%s] received, exiting ...", receivedSig)
		cancel()
	case err := <-menuDone:
		if err != nil {
			log.Fatalf("session aborted: %s", err)
		}
		fmt.Println("done")
	}
}
