package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsvensson/xcolor/internal/ctm"
	"github.com/jsvensson/xcolor/internal/xrandr"
)

// ValidFormats defines the allowed show output formats.
var ValidFormats = []string{"text", "yaml", "json"}

// Report is what show prints: the matrix, its fixed-point words and the
// resulting command line.
type Report struct {
	Output  string        `json:"output" yaml:"output"`
	Matrix  [3][3]float64 `json:"matrix" yaml:"matrix,flow"`
	Words   []uint64      `json:"words" yaml:"words,flow"`
	CTM     string        `json:"ctm" yaml:"ctm"`
	Command []string      `json:"command,omitempty" yaml:"command,omitempty,flow"`
}

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	flags := &adjustFlags{}
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the matrix and xrandr arguments for the given adjustments",
		Long:  "Print the color matrix, its fixed-point encoding and the xrandr command\nwithout running anything. Without a matrix flag the identity matrix is shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}

			c, err := opts.command(cmd.OutOrStdout(), cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}

			report, err := buildReport(c, flags.settings(cmd))
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|yaml|json)")

	return cmd
}

func buildReport(c *xrandr.Command, s xrandr.Settings) (*Report, error) {
	argv, err := c.Argv(s)
	if err != nil && !errors.Is(err, xrandr.ErrNothingToApply) {
		return nil, err
	}

	m, _, err := s.Matrix()
	if err != nil {
		return nil, err
	}

	words := ctm.Encode(m)
	report := &Report{
		Output:  s.OutputName(),
		Matrix:  m.Rows(),
		Words:   make([]uint64, len(words)),
		CTM:     ctm.ArgumentString(words),
		Command: argv,
	}
	for i, w := range words {
		report.Words[i] = uint64(w)
	}
	return report, nil
}

func writeReport(w io.Writer, format string, r *Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r *Report) error {
	out := termenv.NewOutput(w)
	heading := func(s string) string {
		return out.String(s).Bold().String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", heading("output:"), r.Output)
	fmt.Fprintf(&b, "%s\n", heading("matrix:"))
	for _, row := range r.Matrix {
		fmt.Fprintf(&b, "  %s %s %s\n", formatCoeff(row[0]), formatCoeff(row[1]), formatCoeff(row[2]))
	}
	fmt.Fprintf(&b, "%s\n", heading("words:"))
	for i := 0; i < len(r.Words); i += 3 {
		fmt.Fprintf(&b, "  0x%016x 0x%016x 0x%016x\n", r.Words[i], r.Words[i+1], r.Words[i+2])
	}
	fmt.Fprintf(&b, "%s %s\n", heading("ctm:"), r.CTM)
	if len(r.Command) > 0 {
		fmt.Fprintf(&b, "%s %s\n", heading("command:"), strings.Join(r.Command, " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatCoeff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
