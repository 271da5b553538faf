/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs creates logr loggers (https://github.com/go-logr/logr) backed by the usual logging libraries.
package logs

import (
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/logs/logrimp"
)

//go:generate go tool enumer -type=Backend -trimprefix=Backend -transform=lower -text -json

// Backend is the logging library a logger is built on.
type Backend uint8

const (
	// BackendZap uses go.uber.org/zap.
	BackendZap Backend = iota
	// BackendLogrus uses github.com/sirupsen/logrus.
	BackendLogrus
	// BackendHclog uses github.com/hashicorp/go-hclog.
	BackendHclog
	// BackendStd uses the standard library log package.
	BackendStd
	// BackendStdout prints plain lines.
	BackendStdout
	// BackendNone discards everything.
	BackendNone
)

// NewLogger returns a logger named loggerSource writing to os.Stderr.
func NewLogger(backend Backend, loggerSource string) (logr.Logger, error) {
	return NewLoggerWithWriter(backend, loggerSource, os.Stderr)
}

// NewLoggerWithWriter returns a logger named loggerSource writing to w.
func NewLoggerWithWriter(backend Backend, loggerSource string, w io.Writer) (logger logr.Logger, err error) {
	if w == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing log destination")
		return
	}
	switch backend {
	case BackendZap:
		logger, err = logrimp.NewZapLogger(w)
	case BackendLogrus:
		logger = logrimp.NewLogrusLogger(w)
	case BackendHclog:
		logger = logrimp.NewHclogLogger(w)
	case BackendStd:
		logger = logrimp.NewStdLogger(w)
	case BackendStdout:
		logger = logrimp.NewWriterLogr(w)
	case BackendNone:
		logger = logrimp.NewNoopLogger()
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "logging backend %v", backend)
	}
	if err != nil {
		return
	}
	if loggerSource == "" {
		err = commonerrors.ErrNoLoggerSource
		return
	}
	logger = logger.WithName(loggerSource)
	return
}

// NewQuietLogger wraps logger so that only errors get through.
func NewQuietLogger(logger logr.Logger) logr.Logger {
	return logrimp.NewQuietLogger(logger)
}
