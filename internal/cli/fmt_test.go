package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "messy.hcl")
	clean := filepath.Join(dir, "clean.hcl")
	require.NoError(t, os.WriteFile(messy, []byte("profile \"a\" {\nreset = true\n}\n"), 0644))
	require.NoError(t, os.WriteFile(clean, []byte("profile \"a\" {\n  reset = true\n}\n"), 0644))

	out, err := execute(t, "fmt", "--check", messy, clean)
	assert.ErrorIs(t, err, ErrNeedsFormatting)
	assert.Equal(t, messy+"\n", out)

	out, err = execute(t, "fmt", messy, clean)
	require.NoError(t, err)
	assert.Equal(t, messy+"\n", out)

	data, err := os.ReadFile(messy)
	require.NoError(t, err)
	assert.Equal(t, "profile \"a\" {\n  reset = true\n}\n", string(data))

	_, err = execute(t, "fmt", "--check", messy, clean)
	assert.NoError(t, err)
}

func TestFmtMissingFile(t *testing.T) {
	_, err := execute(t, "fmt", filepath.Join(t.TempDir(), "none.hcl"))
	assert.Error(t, err)
}
