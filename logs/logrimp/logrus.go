package logrimp

import (
	"io"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// NewLogrusLogger returns a logrus logger writing text to w.
func NewLogrusLogger(w io.Writer, opts ...logrusr.Option) logr.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.DebugLevel)
	return logrusr.New(logger, opts...)
}
