package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/peerseek/internal/app"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultTTL      = 8
	defaultStrategy = string(domain.StrategyFlooding)
)

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Node the query starts from")
	cmd.Flags().String("target", "", "Resource to look for")
	cmd.Flags().Int("ttl", defaultTTL, "Maximum number of hops")
	cmd.Flags().Uint64("seed", 0, "Seed for the random walk")
}

// queryRequest merges the query flags over the defaults of the network file.
// A flag wins only when it was set explicitly.
func queryRequest(cmd *cobra.Command, defaults domain.QueryDefaults) (app.QueryRequest, error) {
	flags := cmd.Flags()
	req := app.QueryRequest{
		Start:    defaults.Start,
		Target:   defaults.Target,
		TTL:      defaultTTL,
		Strategy: defaultStrategy,
		Seed:     defaults.Seed,
		Seeded:   defaults.Seeded,
	}
	if defaults.HasTTL {
		req.TTL = defaults.TTL
	}
	if defaults.Strategy != "" {
		req.Strategy = defaults.Strategy
	}

	if flags.Changed("start") {
		req.Start, _ = flags.GetString("start")
	}
	if flags.Changed("target") {
		req.Target, _ = flags.GetString("target")
	}
	if flags.Changed("ttl") {
		req.TTL, _ = flags.GetInt("ttl")
	}
	if flags.Changed("strategy") {
		req.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("seed") {
		req.Seed, _ = flags.GetUint64("seed")
		req.Seeded = true
	}

	if req.Start == "" || req.Target == "" {
		return app.QueryRequest{}, zerr.New("start and target are required, set them with --start and --target or in the network file")
	}
	return req, nil
}
