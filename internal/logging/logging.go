// Package logging configures the structured logger used across the
// application.
package logging

import "github.com/sirupsen/logrus"

// New returns a logrus logger at the given level with the given format
// ("text" or "json"). Unknown levels fall back to info.
func New(level, format string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
