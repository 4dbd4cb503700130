package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files...]",
		Short: "Check that network files satisfy the overlay invariants",
		Long: "Check that every given network file is connected, respects its neighbor bounds, " +
			"gives every node a resource and has no self loops. Without arguments the --config file is checked.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				path, err := cmd.Flags().GetString("config")
				if err != nil {
					return err
				}
				args = []string{path}
			}

			reports, err := c.app.ValidateFiles(cmd.Context(), args...)
			for _, r := range reports {
				if r.Err != nil {
					_, _ = fmt.Fprintf(c.out, "invalid  %s\n", r.Path)
					continue
				}
				_, _ = fmt.Fprintf(c.out, "ok       %s  nodes=%d  digest=%s\n", r.Path, r.Nodes, r.Digest)
			}
			return err
		},
	}
}
