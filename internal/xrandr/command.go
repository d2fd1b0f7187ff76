package xrandr

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("xcolor.xrandr")

// DefaultTool is the command used when none is configured.
var DefaultTool = []string{"xrandr"}

// Runner starts a program and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs programs as child processes. Nil writers default to the
// current process's stdout and stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// PrintRunner writes the command line instead of running it.
type PrintRunner struct {
	W io.Writer
}

func (r PrintRunner) Run(_ context.Context, name string, args ...string) error {
	_, err := fmt.Fprintln(r.W, strings.Join(append([]string{name}, args...), " "))
	return err
}

// ParseTool splits a command line such as "env DISPLAY=:1 xrandr" into argv.
func ParseTool(s string) ([]string, error) {
	argv, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing tool %q: %w", s, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("parsing tool %q: empty command", s)
	}
	return argv, nil
}

// Command applies settings by invoking the display tool.
type Command struct {
	Tool   []string
	Runner Runner
}

// Argv returns the full command line that applies s.
func (c *Command) Argv(s Settings) ([]string, error) {
	args, err := s.Args()
	if err != nil {
		return nil, err
	}

	tool := c.Tool
	if len(tool) == 0 {
		tool = DefaultTool
	}

	argv := make([]string, 0, len(tool)+len(args))
	argv = append(argv, tool...)
	return append(argv, args...), nil
}

// Apply validates s and runs the tool once. The tool's exit error is
// wrapped, so callers can recover the *exec.ExitError with errors.As.
func (c *Command) Apply(ctx context.Context, s Settings) error {
	argv, err := c.Argv(s)
	if err != nil {
		return err
	}

	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	log.Infof("running %s", strings.Join(argv, " "))
	if err := runner.Run(ctx, argv[0], argv[1:]...); err != nil {
		log.Errorf("%s failed: %s", argv[0], err)
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	log.Debugf("applied settings to %s", s.OutputName())
	return nil
}
