// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logg = newLogger(os.Stdout, logrus.InfoLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	l.SetOutput(out)
	return l
}

func GetLogger() *logrus.Logger {
	return logg
}

// Configure sets the level by name; unknown names fall back to info.
func Configure(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logg.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logg.SetLevel(lvl)
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	logg.SetOutput(w)
}

func LogError(moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logg.WithFields(fields).Error(err.Error())
}
