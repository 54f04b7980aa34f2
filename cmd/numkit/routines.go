package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/numkit/api"
	"github.com/katalvlaran/numkit/bench"
	"github.com/spf13/cobra"
)

const benchFlag = "bench"

func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return int32(v), nil
}

func printResult(cmd *cobra.Command, res bench.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %.3f ms\n%s\n", res.Name, res.ElapsedMs, res.Summary)
}

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), api.Greet(args[0]))
			return nil
		},
	}
}

func newPowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power BASE EXPONENT",
		Short: "Raise BASE to EXPONENT by repeated int32 multiplication",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseInt32("base", args[0])
			if err != nil {
				return err
			}
			exp, err := parseInt32("exponent", args[1])
			if err != nil {
				return err
			}
			if timed, _ := cmd.Flags().GetBool(benchFlag); timed {
				res, err := api.BenchmarkPower(base, exp)
				if err != nil {
					return err
				}
				printResult(cmd, res)
				return nil
			}
			v, err := api.CalculatePower(base, exp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().Bool(benchFlag, false, "print a timed benchmark result")

	return cmd
}

func newFibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt32("n", args[0])
			if err != nil {
				return err
			}
			if timed, _ := cmd.Flags().GetBool(benchFlag); timed {
				res, err := api.BenchmarkFibonacci(n)
				if err != nil {
					return err
				}
				printResult(cmd, res)
				return nil
			}
			v, err := api.CalculateFibonacci(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().Bool(benchFlag, false, "print a timed benchmark result")

	return cmd
}

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort SIZE",
		Short: "Generate SIZE random int32 values and sort them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseInt32("size", args[0])
			if err != nil {
				return err
			}
			if timed, _ := cmd.Flags().GetBool(benchFlag); timed {
				res, err := api.BenchmarkSort(size)
				if err != nil {
					return err
				}
				printResult(cmd, res)
				return nil
			}
			out, err := api.SortLargeArray(size)
			if err != nil {
				return err
			}
			if all, _ := cmd.Flags().GetBool("print"); all {
				for _, v := range out {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			}
			if len(out) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sorted 0 values")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sorted %d values: min=%d max=%d\n", len(out), out[0], out[len(out)-1])
			return nil
		},
	}
	cmd.Flags().Bool(benchFlag, false, "print a timed benchmark result")
	cmd.Flags().Bool("print", false, "print every sorted value")

	return cmd
}

func newMatmulCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matmul SIZE",
		Short: "Multiply SIZE×SIZE matrices of 1s and 2s in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseInt32("size", args[0])
			if err != nil {
				return err
			}
			if timed, _ := cmd.Flags().GetBool(benchFlag); timed {
				res, err := api.BenchmarkMatrix(size)
				if err != nil {
					return err
				}
				printResult(cmd, res)
				return nil
			}
			rows, err := api.MatrixMultiplication(size)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "empty product")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d product, every cell = %d\n", len(rows), len(rows[0]), rows[0][0])
			return nil
		},
	}
	cmd.Flags().Bool(benchFlag, false, "print a timed benchmark result")

	return cmd
}
