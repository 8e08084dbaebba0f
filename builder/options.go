// SPDX-License-Identifier: MIT
// Package: simgraph/builder
//
// options.go - functional options for BuildGraph.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors PANIC on meaningless inputs (nil logger/context);
//     BuildGraph itself never panics.
//   • Later options override earlier ones.

package builder

import (
	"context"

	"go.uber.org/zap"
)

// Option customizes a BuildGraph call.
type Option func(*buildConfig)

// buildConfig aggregates the knobs used by BuildGraph.
type buildConfig struct {
	ctx    context.Context
	logger *zap.Logger
}

// newBuildConfig resolves defaults and applies opts in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		ctx:    context.Background(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext sets a context checked once per outer comparison row.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *buildConfig) { c.ctx = ctx }
}

// WithLogger attaches a logger for build diagnostics (debug level).
// Panics on nil; use zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}
