// cmd/cardtest/main.go
package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jason-s-yu/dominion/internal/cardtest"
	"github.com/jason-s-yu/dominion/internal/config"
	"github.com/jason-s-yu/dominion/internal/logging"
	_ "github.com/joho/godotenv/autoload"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitSetup  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the configured card test suites, printing each report to out.
// Passing -v lowers the log level to debug.
func run(args []string, out, errOut io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		logger, _ := logging.New(errOut, "info")
		logger.WithError(err).Error("failed to load config")
		return exitSetup
	}
	for _, arg := range args {
		if arg == "-v" {
			cfg.LogLevel = "debug"
		}
	}

	logger, err := logging.New(errOut, cfg.LogLevel)
	if err != nil {
		logger, _ = logging.New(errOut, "info")
		logger.WithError(err).Error("failed to configure logging")
		return exitSetup
	}

	kingdom, err := cfg.ParsedKingdom()
	if err != nil {
		logger.WithError(err).Error("invalid kingdom")
		return exitSetup
	}

	setup := cardtest.Setup{Players: cfg.Players, Kingdom: kingdom, Seed: cfg.Seed}
	runID := uuid.New()
	code := exitOK
	for _, name := range cfg.Suites {
		log := logging.ForRun(logger, runID, name)
		report, err := cardtest.Run(name, setup, log)
		if err != nil {
			log.WithError(err).Error("card test could not run")
			return exitSetup
		}
		if _, err := report.WriteTo(out); err != nil {
			log.WithError(err).Error("failed to write report")
			return exitSetup
		}
		passed, failed := report.Counts()
		log.WithField("passed", passed).WithField("failed", failed).Info("card test finished")
		if failed > 0 {
			code = exitFailed
		}
	}
	return code
}
