package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
	once sync.Once
)

// Get returns the process-wide JSON logger.
func Get() *logrus.Logger {
	once.Do(func() {
		logg = logrus.New()
		logg.SetFormatter(&logrus.JSONFormatter{})
		logg.SetLevel(logrus.InfoLevel)
	})
	return logg
}

// StorageError logs a failed storage call with enough context to find it.
func StorageError(entity, op string, err error) {
	Get().WithFields(logrus.Fields{
		"entity": entity,
		"op":     op,
	}).WithError(err).Error("storage call failed")
}
