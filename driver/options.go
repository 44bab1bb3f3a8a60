package driver

import (
	"time"

	"github.com/hugolhafner/go-streamtest/logger"
)

type options struct {
	startTime time.Time
	logger    logger.Logger
}

func defaultOptions() options {
	return options{
		startTime: time.Now(),
		logger:    logger.NewNoopLogger(),
	}
}

type Option func(*options)

// WithStartTime pins the default timestamp assigned to records piped in
// without one. Without it the driver captures the wall clock once at
// creation.
func WithStartTime(t time.Time) Option {
	return func(o *options) {
		if !t.IsZero() {
			o.startTime = t
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
