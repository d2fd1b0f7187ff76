package cli

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand("test")
	require.NotNil(t, cmd)
	assert.Equal(t, "xcolor", cmd.Use)
	assert.Contains(t, cmd.Long, "xrandr")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand("test")
	commands := []string{"set", "reset", "profile", "show", "decode", "fmt", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand("test")

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "0", verboseFlag.DefValue)

	for _, name := range []string{"config", "tool", "dry-run"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
}

func TestSetCommandFlags(t *testing.T) {
	cmd := NewRootCommand("test")
	setCmd, _, err := cmd.Find([]string{"set"})
	require.NoError(t, err)

	shorthands := map[string]string{
		"output":      "o",
		"brightness":  "b",
		"gamma":       "g",
		"red-gamma":   "R",
		"green-gamma": "G",
		"blue-gamma":  "B",
		"saturation":  "s",
		"temperature": "t",
		"white":       "w",
	}
	for name, short := range shorthands {
		f := setCmd.Flags().Lookup(name)
		require.NotNil(t, f, "missing --%s", name)
		assert.Equal(t, short, f.Shorthand, "--%s shorthand", name)
	}
	assert.NotNil(t, setCmd.Flags().Lookup("rgb-gain"))
	assert.NotNil(t, setCmd.Flags().Lookup("ctm"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, ExitCode(errors.New("boom")))

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	runErr := exec.Command(sh, "-c", "exit 3").Run()
	require.Error(t, runErr)
	assert.Equal(t, 3, ExitCode(runErr))
}
