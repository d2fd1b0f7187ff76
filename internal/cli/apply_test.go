package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsvensson/xcolor/internal/ctm"
	"github.com/jsvensson/xcolor/internal/xrandr"
)

const identityArg = "0,1,0,0,0,0,0,0,0,1,0,0,0,0,0,0,0,1"

func TestSetDryRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "brightness on named output",
			args: []string{"set", "--dry-run", "-o", "HDMI-1", "-b", "0.8"},
			want: "xrandr --output HDMI-1 --brightness 0.8\n",
		},
		{
			name: "per-channel gamma",
			args: []string{"set", "--dry-run", "-g", "2", "-R", "1.5"},
			want: "xrandr --output eDP --gamma 1.5:2:2\n",
		},
		{
			name: "full saturation",
			args: []string{"set", "--dry-run", "--saturation", "1"},
			want: "xrandr --output eDP --set CTM " + identityArg + "\n",
		},
		{
			name: "rgb gain",
			args: []string{"set", "--dry-run", "--rgb-gain", "2,1,0.5"},
			want: "xrandr --output eDP --set CTM 0,2,0,0,0,0,0,0,0,1,0,0,0,0,0,0,2147483648,0\n",
		},
		{
			name: "explicit ctm",
			args: []string{"set", "--dry-run", "--ctm", "-1,0,0,0,1,0,0,0,1"},
			want: "xrandr --output eDP --set CTM 0,2147483649,0,0,0,0,0,0,0,1,0,0,0,0,0,0,0,1\n",
		},
		{
			name: "custom tool",
			args: []string{"set", "--dry-run", "--tool", "env DISPLAY=:1 xrandr", "-b", "1"},
			want: "env DISPLAY=:1 xrandr --output eDP --brightness 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSetErrors(t *testing.T) {
	_, err := execute(t, "set", "--dry-run")
	assert.ErrorIs(t, err, xrandr.ErrNothingToApply)

	_, err = execute(t, "set", "--dry-run", "-s", "0.5", "--rgb-gain", "1,1,1")
	assert.ErrorIs(t, err, xrandr.ErrConflictingMatrix)

	_, err = execute(t, "set", "--dry-run", "-b", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brightness must be between")

	_, err = execute(t, "set", "--dry-run", "--ctm", "1,0,0,0,1")
	var shapeErr *ctm.ShapeError
	assert.True(t, errors.As(err, &shapeErr), "expected *ctm.ShapeError, got %v", err)

	_, err = execute(t, "set", "--dry-run", "--rgb-gain", "NaN,1,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be finite")

	_, err = execute(t, "set", "--dry-run", "--white", "#12345g")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "white point")

	_, err = execute(t, "set", "--dry-run", "--tool", `"xrandr`, "-b", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing tool")
}

func TestReset(t *testing.T) {
	out, err := execute(t, "reset", "--dry-run", "-o", "eDP-1")
	require.NoError(t, err)
	assert.Equal(t, "xrandr --output eDP-1 --set CTM "+identityArg+" --brightness 1 --gamma 1\n", out)
}

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const profilesHCL = `
output = "eDP-1"
tool   = "env DISPLAY=:0 xrandr"

profile "dim" {
  brightness = 0.5
}

profile "grey" {
  output     = "HDMI-1"
  saturation = 1
}
`

func TestProfile(t *testing.T) {
	path := writeProfiles(t, profilesHCL)

	out, err := execute(t, "profile", "--dry-run", "--config", path, "dim")
	require.NoError(t, err)
	assert.Equal(t, "env DISPLAY=:0 xrandr --output eDP-1 --brightness 0.5\n", out)

	out, err = execute(t, "profile", "--dry-run", "--config", path, "grey")
	require.NoError(t, err)
	assert.Equal(t, "env DISPLAY=:0 xrandr --output HDMI-1 --set CTM "+identityArg+"\n", out)
}

func TestProfileOverrides(t *testing.T) {
	path := writeProfiles(t, profilesHCL)

	out, err := execute(t, "profile", "--dry-run", "--config", path, "--tool", "xrandr", "-o", "DP-3", "dim")
	require.NoError(t, err)
	assert.Equal(t, "xrandr --output DP-3 --brightness 0.5\n", out)
}

func TestProfileDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "xcolor"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xcolor", "profiles.hcl"), []byte(profilesHCL), 0644))

	out, err := execute(t, "profile", "--dry-run", "dim")
	require.NoError(t, err)
	assert.Contains(t, out, "--brightness 0.5")
}

func TestProfileErrors(t *testing.T) {
	path := writeProfiles(t, profilesHCL)

	_, err := execute(t, "profile", "--dry-run", "--config", path, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: dim, grey")

	_, err = execute(t, "profile", "--dry-run", "--config", path)
	assert.Error(t, err, "profile requires a name")

	_, err = execute(t, "profile", "--dry-run", "--config", filepath.Join(t.TempDir(), "none.hcl"), "dim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
