package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes run as a YAML document.
func WriteYAML(w io.Writer, run *Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encode run: %w", err)
	}
	return enc.Close()
}

// WriteText renders run as an aligned table preceded by a header line.
func WriteText(w io.Writer, run *Run) error {
	if _, err := fmt.Fprintf(w, "run %s on %s (%d logical cores, GOMAXPROCS=%d)\n",
		run.ID, run.Host.CPU, run.Host.LogicalCores, run.Host.GOMAXPROCS); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tELAPSED (ms)\tSUMMARY")
	for _, r := range run.Results {
		fmt.Fprintf(tw, "%s\t%.3f\t%s\n", r.Name, r.ElapsedMs, r.Summary)
	}
	return tw.Flush()
}
