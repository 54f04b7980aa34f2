package bench

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Routine names accepted by Case.Routine.
const (
	RoutinePower     = "power"
	RoutineFibonacci = "fibonacci"
	RoutineSort      = "sort"
	RoutineMatrix    = "matrix"
)

var (
	// ErrUnknownRoutine is returned for a Case whose Routine is not one of Routine*.
	ErrUnknownRoutine = errors.New("bench: unknown routine")

	// ErrInvalidCase is returned for a Case with negative arguments.
	ErrInvalidCase = errors.New("bench: invalid case")
)

// Result pairs one timing measurement with a descriptive summary.
// ElapsedMs is always >= 0.
type Result struct {
	Name      string  `yaml:"name"`
	ElapsedMs float64 `yaml:"elapsed_ms"`
	Summary   string  `yaml:"summary"`
}

// Host describes the machine a Run executed on.
type Host struct {
	CPU           string `yaml:"cpu"`
	LogicalCores  int    `yaml:"logical_cores"`
	PhysicalCores int    `yaml:"physical_cores"`
	GOMAXPROCS    int    `yaml:"gomaxprocs"`
}

// Run is the outcome of one Suite execution.
type Run struct {
	ID        string    `yaml:"id"`
	Timestamp time.Time `yaml:"timestamp"`
	Host      Host      `yaml:"host"`
	Results   []Result  `yaml:"results"`
}

// Case is one configured suite entry.
//
// Fields:
//   - Routine: one of RoutinePower, RoutineFibonacci, RoutineSort, RoutineMatrix.
//   - Arg    : exponent (power), index (fibonacci) or size (sort, matrix).
//   - Base   : base for power; ignored otherwise.
//   - Repeat : how many times to run the case; 0 means once.
type Case struct {
	Routine string `mapstructure:"routine" yaml:"routine"`
	Arg     int    `mapstructure:"arg" yaml:"arg"`
	Base    int32  `mapstructure:"base" yaml:"base"`
	Repeat  int    `mapstructure:"repeat" yaml:"repeat"`
}

// Validate checks that the routine is known and arguments are non-negative.
// A power exponent must also fit int32, the exponent type of numeric.Power.
func (c Case) Validate() error {
	switch c.Routine {
	case RoutinePower, RoutineFibonacci, RoutineSort, RoutineMatrix:
	default:
		return ErrUnknownRoutine
	}
	if c.Arg < 0 || c.Repeat < 0 {
		return ErrInvalidCase
	}
	if c.Routine == RoutinePower && c.Arg > math.MaxInt32 {
		return fmt.Errorf("exponent %d exceeds int32: %w", c.Arg, ErrInvalidCase)
	}
	return nil
}

// times returns the effective repeat count.
func (c Case) times() int {
	if c.Repeat == 0 {
		return 1
	}
	return c.Repeat
}
