package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/peerseek/internal/app"
)

func (c *CLI) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare every strategy with a cold and a warm cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, settings, err := c.load(cmd)
			if err != nil {
				return err
			}
			req, err := queryRequest(cmd, settings.Defaults)
			if err != nil {
				return err
			}

			rows, err := c.app.Bench(cmd.Context(), net, req)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "STRATEGY\tCACHE\tRESULT\tVISITED\tMESSAGES\tELAPSED")
			for _, row := range rows {
				printBenchLine(tw, "cold", row.Cold)
				printBenchLine(tw, "warm", row.Warm)
			}
			return tw.Flush()
		},
	}

	addQueryFlags(cmd)
	return cmd
}

func printBenchLine(w io.Writer, label string, r app.Report) {
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
		r.Query.Strategy, label, r.Result.Outcome, r.Result.VisitedCount, r.Result.Messages, r.Elapsed)
}
