// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package clog provides context aware logging.
// It stores a logger with labels, e.g. the job name, in each context so
// that log entries of concurrent jobs can be told apart.
package clog

import (
	"context"
	"flag"

	"github.com/charmbracelet/log"
)

type contextKeyType int

var contextKey contextKeyType

// NewContext sets the given logger to the context.
func NewContext(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// NewSpan sets a sub logger with the given labels to the context.
// labels are key value pairs, e.g. "job", "module".
func NewSpan(ctx context.Context, labels ...any) context.Context {
	return NewContext(ctx, FromContext(ctx).With(labels...))
}

// FromContext returns a logger in the context, or the default logger if
// it's not set.
func FromContext(ctx context.Context) *log.Logger {
	logger, ok := ctx.Value(contextKey).(*log.Logger)
	if !ok {
		return log.Default()
	}
	return logger
}

// Level is a flag.Value to set the log level of the default logger.
type Level struct {
	level log.Level
}

var _ flag.Value = (*Level)(nil)

// RegisterFlags registers -log_level flag in fs.
func (l *Level) RegisterFlags(fs *flag.FlagSet) {
	l.level = log.InfoLevel
	fs.Var(l, "log_level", "log level. debug, info, warn, error or fatal")
}

func (l *Level) String() string {
	if l == nil {
		return log.InfoLevel.String()
	}
	return l.level.String()
}

// Set parses s as a log level.
func (l *Level) Set(s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}
	l.level = level
	return nil
}

// Apply sets the level to the default logger.
func (l *Level) Apply() {
	log.SetLevel(l.level)
}
