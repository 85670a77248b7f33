package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the process-wide logger. Level falls back to info when the
// configured value does not parse.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}
