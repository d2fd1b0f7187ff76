// Package format rewrites profile files in canonical HCL style.
package format

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	multipleBlankLines        = regexp.MustCompile(`\n{3,}`)
	blankLineAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns src in HCL canonical style, with runs of blank lines
// collapsed to one and no blank lines directly inside braces. It never fails:
// hclwrite tolerates partial or invalid input.
func Format(src []byte) []byte {
	out := hclwrite.Format(src)
	out = multipleBlankLines.ReplaceAll(out, []byte("\n\n"))
	out = blankLineAfterOpenBrace.ReplaceAll(out, []byte("{\n"))
	return blankLineBeforeCloseBrace.ReplaceAll(out, []byte("\n${1}"))
}

// File formats the profile file at path and reports whether it was not
// already canonical. The file is rewritten only when write is set.
func File(path string, write bool) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	formatted := Format(src)
	if bytes.Equal(formatted, src) {
		return false, nil
	}

	if write {
		info, err := os.Stat(path)
		if err != nil {
			return true, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
			return true, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return true, nil
}
