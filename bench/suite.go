package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("numkit/bench")

// Suite runs a list of cases with shared settings.
type Suite struct {
	Cases    []Case
	Workers  int       // matrix workers, 0 = GOMAXPROCS
	Seed     int64     // sort seed, 0 = default stream
	Recorder *Recorder // optional
}

// Run executes every case in order and returns the collected results.
// It stops at the first failing case and returns the partial Run together
// with the error. Cancelling ctx stops the suite between measurements.
func (s *Suite) Run(ctx context.Context) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Host:      DetectHost(),
	}
	log.Info("benchmark suite started", "id", run.ID, "cases", len(s.Cases), "cpu", run.Host.CPU)

	for idx, c := range s.Cases {
		if err := c.Validate(); err != nil {
			return run, fmt.Errorf("case %d (%s): %w", idx, c.Routine, err)
		}
		n := c.times()
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return run, err
			}
			res, err := s.runCase(ctx, c)
			// metrics are labelled by routine; only the reported name carries the repeat index
			s.Recorder.Observe(res, err)
			if n > 1 {
				res.Name = fmt.Sprintf("%s#%d", res.Name, i+1)
			}
			if err != nil {
				log.Error("benchmark case failed", "case", idx, "routine", c.Routine, "error", err.Error())
				return run, fmt.Errorf("case %d (%s): %w", idx, c.Routine, err)
			}
			log.Debug("benchmark case done", "name", res.Name, "elapsed_ms", res.ElapsedMs)
			run.Results = append(run.Results, res)
		}
	}

	log.Info("benchmark suite finished", "id", run.ID, "results", len(run.Results))

	return run, nil
}

func (s *Suite) runCase(ctx context.Context, c Case) (Result, error) {
	switch c.Routine {
	case RoutinePower:
		return Power(c.Base, int32(c.Arg))
	case RoutineFibonacci:
		return Fibonacci(c.Arg)
	case RoutineSort:
		return Sort(c.Arg, s.Seed)
	case RoutineMatrix:
		return Matrix(ctx, c.Arg, s.Workers)
	default:
		return Result{Name: c.Routine}, ErrUnknownRoutine
	}
}
