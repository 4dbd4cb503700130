package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/peerseek/internal/adapters/replay"
	"go.trai.ch/peerseek/internal/app"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search the network for a resource",
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

			repeat, _ := cmd.Flags().GetInt("repeat")
			trace, _ := cmd.Flags().GetBool("trace")
			cadence, _ := cmd.Flags().GetDuration("cadence")

			store := c.app.NewCache(net, settings.CacheKey)
			for i := range max(repeat, 1) {
				report, err := c.app.Query(cmd.Context(), net, req, store)
				if err != nil {
					return err
				}
				if trace && i == 0 {
					player := replay.NewPlayer(c.out, replay.WithClock(c.clock), replay.WithCadence(cadence))
					if err := player.Play(cmd.Context(), report.Result.Trace); err != nil {
						return err
					}
				}
				printReport(c.out, report)
			}
			return nil
		},
	}

	addQueryFlags(cmd)
	cmd.Flags().String("strategy", "", "Search strategy: flooding, random_walk or depth_first")
	cmd.Flags().Int("repeat", 1, "Run the query this many times against the same cache")
	cmd.Flags().Bool("trace", false, "Replay the visited nodes frame by frame")
	cmd.Flags().Duration("cadence", 0, "Delay between replayed frames")

	return cmd
}

func printReport(w io.Writer, r app.Report) {
	cache := "miss"
	if r.CacheHit {
		cache = "hit"
	}
	_, _ = fmt.Fprintf(w, "Result: %s %s (%s, ttl %d)\n", r.Query.Target, r.Result.Outcome, r.Query.Strategy, r.Query.TTL)
	_, _ = fmt.Fprintf(w, "Nodes visited: %d\n", r.Result.VisitedCount)
	_, _ = fmt.Fprintf(w, "Messages: %d\n", r.Result.Messages)
	_, _ = fmt.Fprintf(w, "Elapsed: %s\n", r.Elapsed)
	_, _ = fmt.Fprintf(w, "Cache: %s\n", cache)
}
