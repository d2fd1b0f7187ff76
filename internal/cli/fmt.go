package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsvensson/xcolor/internal/format"
)

// ErrNeedsFormatting is returned by fmt --check when a file is not canonical.
var ErrNeedsFormatting = errors.New("files need formatting")

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format profile files",
		Long:  "Format one or more profile files in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasErrors := false
			needsFormatting := false

			for _, path := range args {
				changed, err := format.File(path, !check)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
					hasErrors = true
					continue
				}
				if changed {
					fmt.Fprintln(cmd.OutOrStdout(), path)
					needsFormatting = true
				}
			}

			if hasErrors {
				return errors.New("formatting failed")
			}
			if check && needsFormatting {
				return ErrNeedsFormatting
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&check, "check", "c", false, "check if files are formatted (do not write changes)")

	return cmd
}
