package kernel

import (
	"runtime"

	"github.com/uyouii/geodesic-smoothing/model"
)

// Option configures how a kernel matrix is evaluated. Options never change
// the values produced, only how the rows are scheduled.
type Option func(*options)

type options struct {
	workers          int
	minRowsPerWorker int
}

// WithWorkers limits the number of goroutines evaluating rows.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMinRowsPerWorker sets the smallest row chunk handed to a goroutine.
func WithMinRowsPerWorker(n int) Option {
	return func(o *options) {
		o.minRowsPerWorker = n
	}
}

func gatherOptions(opts []Option) (*options, error) {
	o := &options{
		workers:          runtime.GOMAXPROCS(0),
		minRowsPerWorker: DefaultMinRowsPerWorker,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.workers < 1 {
		return nil, &model.InvalidParameterError{Name: "workers", Value: float64(o.workers)}
	}
	if o.minRowsPerWorker < 1 {
		return nil, &model.InvalidParameterError{Name: "min rows per worker", Value: float64(o.minRowsPerWorker)}
	}
	return o, nil
}
