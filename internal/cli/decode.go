package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsvensson/xcolor/internal/ctm"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode VALUES",
		Short: "Decode an xrandr CTM property value back into a matrix",
		Long:  "Decode the 18 comma-separated 32-bit values of an xrandr CTM property,\nas printed by 'xrandr --verbose', into the 3x3 matrix they encode.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := ctm.ParseArguments(args[0])
			if err != nil {
				return err
			}
			for _, row := range ctm.Decode(words).Rows() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", formatCoeff(row[0]), formatCoeff(row[1]), formatCoeff(row[2]))
			}
			return nil
		},
	}
}
