package benchmark

import (
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	cases  []Case
}

type Option func(*options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithCases restricts a run to the given cases. All cases run by default.
func WithCases(cases ...Case) Option {
	return func(opts *options) {
		opts.cases = cases
	}
}
