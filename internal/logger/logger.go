package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configura el logger estándar de logrus
func Setup(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)

	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// WithComponent retorna una entrada con el campo component
func WithComponent(component string) *log.Entry {
	return log.WithField("component", component)
}
