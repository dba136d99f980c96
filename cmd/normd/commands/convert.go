package commands

import (
	"github.com/normd/normd/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert PATH",
		Short: "Normalize the names under a path once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, _ := cmd.Flags().GetBool("contents")
			directory, _ := cmd.Flags().GetBool("directory")
			recursive, _ := cmd.Flags().GetBool("recursive")
			reverse, _ := cmd.Flags().GetBool("reverse")

			return c.app.Convert(cmd.Context(), args[0], app.ConvertOptions{
				Contents:  contents,
				Directory: directory,
				Recursive: recursive,
				Reverse:   reverse,
			})
		},
	}
	cmd.Flags().BoolP("contents", "c", false, "Rename a directory's direct children (default for directories)")
	cmd.Flags().BoolP("directory", "d", false, "Rename the directory entry itself")
	cmd.Flags().BoolP("recursive", "r", false, "Rename the directory and everything below it")
	cmd.Flags().BoolP("reverse", "R", false, "Convert to the decomposed form (NFD) instead of NFC")
	cmd.MarkFlagsMutuallyExclusive("contents", "directory", "recursive")
	return cmd
}
