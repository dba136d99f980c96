package commands

import (
	"github.com/normd/normd/internal/adapters/detector"
	"github.com/normd/normd/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the watched paths interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !detector.InteractiveTerminal() {
				return domain.ErrNotATerminal
			}
			return c.app.Edit(cmd.Context())
		},
	}
}
