package main

import (
	"github.com/katalvlaran/numkit/api"
	"github.com/katalvlaran/numkit/config"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/spf13/cobra"
)

var log = logger.GetOrCreate("numkit/cmd")

// app holds state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "numkit",
		Short: "Numeric routines and timing benchmarks",
		Long: `numkit runs integer power, Fibonacci, large random-array sorting and
row-parallel matrix multiplication, either once (printing the value) or
timed (printing a benchmark result), and can run a configured suite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			return api.InitApp(api.Settings{
				LogLevel: cfg.LogLevel,
				Seed:     cfg.Seed,
				Workers:  cfg.Workers,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	pf.String("log-level", "", `log level pattern, e.g. "*:DEBUG"`)
	pf.Int("workers", 0, "matrix workers (0 = GOMAXPROCS)")
	pf.Int64("seed", 0, "sort input seed (0 = default stream)")

	root.AddCommand(
		newGreetCmd(),
		newPowerCmd(),
		newFibCmd(),
		newSortCmd(),
		newMatmulCmd(),
		newSuiteCmd(a),
	)

	return root
}
