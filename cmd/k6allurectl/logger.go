package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. LOG_LEVEL selects the level, and
// verbose forces debug.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)

	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			log.SetLevel(parsed)
		}
	}

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
