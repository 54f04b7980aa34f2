// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the parallel kernels.
//
// Design goals:
//   - Deterministic results: options change scheduling, never values.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "runtime"

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers at call time.
const DefaultWorkers = 0

const panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // DefaultWorkers ⇒ GOMAXPROCS
}

// WithWorkers bounds the number of rows computed concurrently.
// 0 restores the default (GOMAXPROCS); 1 degenerates to a sequential loop
// on a single helper goroutine.
//
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func defaultOptions() Options {
	return Options{workers: DefaultWorkers}
}

// gatherOptions applies opts over the defaults and resolves DefaultWorkers.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// Workers reports the effective worker count.
func (o Options) Workers() int { return o.workers }
