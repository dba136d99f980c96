package commands

import (
	"strconv"

	"github.com/normd/normd/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the watched paths",
	}

	cmd.AddCommand(c.newConfigListCmd())
	cmd.AddCommand(c.newConfigAddCmd())
	cmd.AddCommand(c.newConfigRemoveCmd())
	cmd.AddCommand(c.newConfigMoveCmd())
	cmd.AddCommand(c.newConfigSortCmd())
	cmd.AddCommand(c.newConfigToggleActionCmd())
	cmd.AddCommand(c.newConfigToggleModeCmd())

	return cmd
}

func (c *CLI) newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the resolved rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ConfigList(cmd.Context())
		},
	}
}

func (c *CLI) newConfigAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add PATH",
		Short: "Add a rule for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ignore, _ := cmd.Flags().GetBool("ignore")
			children, _ := cmd.Flags().GetBool("children")
			return c.app.ConfigAdd(cmd.Context(), args[0], ignore, children)
		},
	}
	cmd.Flags().Bool("ignore", false, "Exempt the path instead of watching it")
	cmd.Flags().Bool("children", false, "Cover only the directory's direct children")
	return cmd
}

func (c *CLI) newConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove the rule at a list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.app.ConfigRemove(cmd.Context(), index)
		},
	}
}

func (c *CLI) newConfigMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move INDEX",
		Short: "Swap the rule at a list position with a neighbor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			delta := 1
			if up, _ := cmd.Flags().GetBool("up"); up {
				delta = -1
			}
			return c.app.ConfigMove(cmd.Context(), index, delta)
		},
	}
	cmd.Flags().Bool("up", false, "Move the rule one position up")
	cmd.Flags().Bool("down", false, "Move the rule one position down")
	cmd.MarkFlagsMutuallyExclusive("up", "down")
	cmd.MarkFlagsOneRequired("up", "down")
	return cmd
}

func (c *CLI) newConfigSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Order the rules by path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ConfigSort(cmd.Context())
		},
	}
}

func (c *CLI) newConfigToggleActionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-action INDEX",
		Short: "Flip a rule between watch and ignore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.app.ConfigToggleAction(cmd.Context(), index)
		},
	}
}

func (c *CLI) newConfigToggleModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-mode INDEX",
		Short: "Flip a rule between recursive and children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.app.ConfigToggleMode(cmd.Context(), index)
		},
	}
}

// parseIndex reads a 0-based rule position as printed by config list.
func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrRuleIndex, ""), "value", raw)
	}
	return index, nil
}
