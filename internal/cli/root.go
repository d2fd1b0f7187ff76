// Package cli implements the xcolor command tree.
package cli

import (
	"errors"
	"io"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/xcolor/internal/xrandr"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose int
	Config  string
	Tool    string
	DryRun  bool
}

// NewRootCommand creates the root command for the xcolor CLI.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "xcolor",
		Short: "Adjust display color through xrandr",
		Long: "Adjust brightness, gamma, saturation, per-channel gain or an arbitrary color\n" +
			"transformation matrix (CTM) of an X output by invoking xrandr.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.Verbose, nil)
		},
	}

	cmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "profiles file (default $XDG_CONFIG_HOME/xcolor/profiles.hcl)")
	cmd.PersistentFlags().StringVar(&opts.Tool, "tool", "", "display tool command line (default \"xrandr\")")
	cmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "print the command instead of running it")

	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewDecodeCommand())
	cmd.AddCommand(NewFmtCommand())
	cmd.AddCommand(NewVersionCommand(version))

	return cmd
}

// ExitCode returns the exit status for err: the display tool's own status
// when it ran and failed, 1 otherwise.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// command builds the xrandr command for the global options. configTool is
// used when --tool is not given.
func (o *RootOptions) command(stdout, stderr io.Writer, configTool []string) (*xrandr.Command, error) {
	c := &xrandr.Command{Tool: configTool}

	if o.Tool != "" {
		tool, err := xrandr.ParseTool(o.Tool)
		if err != nil {
			return nil, err
		}
		c.Tool = tool
	}

	if o.DryRun {
		c.Runner = xrandr.PrintRunner{W: stdout}
	} else {
		c.Runner = xrandr.ExecRunner{Stdout: stdout, Stderr: stderr}
	}
	return c, nil
}
