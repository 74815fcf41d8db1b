// internal/logging/logging.go

package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out at the named level ("debug", "info", ...).
func New(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger, nil
}

// ForRun tags every entry with the run ID and the suite being run.
func ForRun(logger logrus.FieldLogger, runID uuid.UUID, suite string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"run":   runID,
		"suite": suite,
	})
}

// StateFields summarizes the public counters of one player for log entries.
func StateFields(player, hand, deck, discard, played, coins int) logrus.Fields {
	return logrus.Fields{
		"player":  player,
		"hand":    hand,
		"deck":    deck,
		"discard": discard,
		"played":  played,
		"coins":   coins,
	}
}
