package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsvensson/xcolor"
	"github.com/jsvensson/xcolor/internal/config"
	"github.com/jsvensson/xcolor/internal/xrandr"
)

// NewSetCommand creates the set command.
func NewSetCommand(opts *RootOptions) *cobra.Command {
	flags := &adjustFlags{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Apply brightness, gamma and color matrix adjustments",
		Long: "Apply adjustments to an output. At most one of --saturation, --rgb-gain,\n" +
			"--temperature, --white and --ctm may be given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.command(cmd.OutOrStdout(), cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			return c.Apply(cmd.Context(), flags.settings(cmd))
		},
	}
	flags.register(cmd)

	return cmd
}

// NewResetCommand creates the reset command.
func NewResetCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the identity matrix, brightness 1 and gamma 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.command(cmd.OutOrStdout(), cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			return c.Apply(cmd.Context(), xrandr.Settings{Output: output, Reset: true})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output to reset")

	return cmd
}

// NewProfileCommand creates the profile command.
func NewProfileCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "profile NAME",
		Short: "Apply a named profile from the profiles file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}

			p, err := xcolor.LoadProfile(path, args[0])
			if err != nil {
				return err
			}
			if output != "" {
				p.Settings.Output = output
			}

			c, err := opts.command(cmd.OutOrStdout(), cmd.ErrOrStderr(), p.Tool)
			if err != nil {
				return err
			}
			if err := c.Apply(cmd.Context(), p.Settings); err != nil {
				return fmt.Errorf("profile %s: %w", p.Name, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "override the profile's output")

	return cmd
}

// configPath resolves --config or the default profiles path.
func (o *RootOptions) configPath() (string, error) {
	if o.Config == "" {
		return config.DefaultPath()
	}
	return config.ExpandPath(o.Config)
}
