package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/numkit/bench"
	"github.com/katalvlaran/numkit/config"
	"github.com/spf13/cobra"
)

func newSuiteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the configured benchmark suite and write a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSuite(cmd)
		},
	}
	cmd.Flags().String("format", config.FormatText, "report format: text or yaml")
	cmd.Flags().String("output", "", "report file (default stdout)")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func (a *app) runSuite(cmd *cobra.Command) error {
	rec := bench.NewRecorder()
	s := &bench.Suite{
		Cases:    a.cfg.Suite,
		Workers:  a.cfg.Workers,
		Seed:     a.cfg.Seed,
		Recorder: rec,
	}

	run, runErr := s.Run(cmd.Context())

	// report whatever completed, even on failure
	if err := a.writeReport(cmd.OutOrStdout(), run); err != nil {
		return err
	}
	if path := a.cfg.Output.MetricsPath; path != "" {
		if err := rec.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Info("metrics written", "path", path)
	}

	return runErr
}

func (a *app) writeReport(stdout io.Writer, run *bench.Run) (err error) {
	w := stdout
	if path := a.cfg.Output.Path; path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("create report: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch a.cfg.Output.Format {
	case config.FormatYAML:
		return bench.WriteYAML(w, run)
	default:
		return bench.WriteText(w, run)
	}
}
