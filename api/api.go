package api

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/numkit/bench"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/numeric"
	"github.com/katalvlaran/numkit/sorting"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// DefaultLogLevel is applied by InitApp when Settings.LogLevel is empty.
const DefaultLogLevel = "*:INFO"

// ErrInvalidSettings is returned by InitApp for negative worker counts.
var ErrInvalidSettings = errors.New("api: invalid settings")

var log = logger.GetOrCreate("numkit/api")

// Settings is shared by every call after InitApp.
type Settings struct {
	LogLevel string // mx-chain-logger pattern, e.g. "*:DEBUG"
	Seed     int64  // sort input seed; 0 = default stream
	Workers  int    // matrix workers; 0 = GOMAXPROCS
}

var current atomic.Pointer[Settings]

func settings() Settings {
	if s := current.Load(); s != nil {
		return *s
	}
	return Settings{}
}

// InitApp validates s, applies the log level and stores s for later calls.
// It may be called again to reconfigure.
func InitApp(s Settings) error {
	if s.Workers < 0 {
		return fmt.Errorf("workers %d: %w", s.Workers, ErrInvalidSettings)
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if err := logger.SetLogLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	current.Store(&s)
	log.Debug("numkit initialized", "seed", s.Seed, "workers", s.Workers)

	return nil
}

// Greet returns "Hello, {name}!".
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// CalculatePower returns base^exponent with int32 wraparound.
func CalculatePower(base, exponent int32) (int32, error) {
	return numeric.Power(base, exponent)
}

// CalculateFibonacci returns F(n).
func CalculateFibonacci(n int32) (int64, error) {
	return numeric.Fibonacci(int(n))
}

// SortLargeArray returns size random int32 values in non-decreasing order.
func SortLargeArray(size int32) ([]int32, error) {
	return sorting.SortLargeArray(int(size), sorting.Options{Seed: settings().Seed})
}

// MatrixMultiplication returns the size×size product of a matrix of 1s and a
// matrix of 2s; every cell equals 2*size.
func MatrixMultiplication(size int32) ([][]int32, error) {
	return matrix.MultiplyConstants(context.Background(), int(size), matrix.WithWorkers(settings().Workers))
}

// BenchmarkPower is the timed variant of CalculatePower.
func BenchmarkPower(base, exponent int32) (bench.Result, error) {
	return bench.Power(base, exponent)
}

// BenchmarkFibonacci is the timed variant of CalculateFibonacci.
func BenchmarkFibonacci(n int32) (bench.Result, error) {
	return bench.Fibonacci(int(n))
}

// BenchmarkSort is the timed variant of SortLargeArray.
func BenchmarkSort(size int32) (bench.Result, error) {
	return bench.Sort(int(size), settings().Seed)
}

// BenchmarkMatrix is the timed variant of MatrixMultiplication.
func BenchmarkMatrix(size int32) (bench.Result, error) {
	return bench.Matrix(context.Background(), int(size), settings().Workers)
}
