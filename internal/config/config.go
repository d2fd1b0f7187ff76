// Package config loads named color profiles from an HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/xcolor/internal/color"
	"github.com/jsvensson/xcolor/internal/xrandr"
	"github.com/mitchellh/go-homedir"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// File is a decoded profiles file.
type File struct {
	Output   string    `hcl:"output,optional"`
	Tool     string    `hcl:"tool,optional"`
	Profiles []Profile `hcl:"profile,block"`
}

// Profile is one named set of adjustments.
type Profile struct {
	Name        string    `hcl:"name,label"`
	Output      string    `hcl:"output,optional"`
	Brightness  *float64  `hcl:"brightness,optional"`
	Gamma       *float64  `hcl:"gamma,optional"`
	RedGamma    *float64  `hcl:"red_gamma,optional"`
	GreenGamma  *float64  `hcl:"green_gamma,optional"`
	BlueGamma   *float64  `hcl:"blue_gamma,optional"`
	Saturation  *float64  `hcl:"saturation,optional"`
	RGBGain     []float64 `hcl:"rgb_gain,optional"`
	Temperature *float64  `hcl:"temperature,optional"`
	WhitePoint  string    `hcl:"white_point,optional"`
	CTM         []float64 `hcl:"ctm,optional"`
	Reset       bool      `hcl:"reset,optional"`
}

// DefaultPath returns $XDG_CONFIG_HOME/xcolor/profiles.hcl, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "xcolor", "profiles.hcl"), nil
}

// ExpandPath expands a leading ~ in path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	return expanded, nil
}

// Load reads and decodes a profiles file.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes profiles from src. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var f File
	if diags := gohcl.DecodeBody(file.Body, buildEvalContext(), &f); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	seen := make(map[string]bool, len(f.Profiles))
	for _, p := range f.Profiles {
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[p.Name] = true
	}

	return &f, nil
}

// Names returns the profile names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Profile looks up a profile by name.
func (f *File) Profile(name string) (*Profile, error) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], nil
		}
	}
	if len(f.Profiles) == 0 {
		return nil, fmt.Errorf("profile %q not found: no profiles defined", name)
	}
	return nil, fmt.Errorf("profile %q not found (available: %s)", name, strings.Join(f.Names(), ", "))
}

// Settings converts the profile to xrandr settings. The profile's own output
// wins over defaultOutput.
func (p *Profile) Settings(defaultOutput string) xrandr.Settings {
	output := p.Output
	if output == "" {
		output = defaultOutput
	}
	return xrandr.Settings{
		Output:      output,
		Brightness:  p.Brightness,
		Gamma:       p.Gamma,
		RedGamma:    p.RedGamma,
		GreenGamma:  p.GreenGamma,
		BlueGamma:   p.BlueGamma,
		Saturation:  p.Saturation,
		RGBGain:     p.RGBGain,
		Temperature: p.Temperature,
		WhitePoint:  p.WhitePoint,
		CTM:         p.CTM,
		Reset:       p.Reset,
	}
}

func gainList(r, g, b float64) cty.Value {
	return cty.ListVal([]cty.Value{
		cty.NumberFloatVal(r),
		cty.NumberFloatVal(g),
		cty.NumberFloatVal(b),
	})
}

// makeKelvinFunc creates an HCL function returning channel gains for a color
// temperature.
// Usage: rgb_gain = kelvin(3400)
func makeKelvinFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns [r, g, b] gains for a color temperature in Kelvin",
		Params: []function.Parameter{
			{
				Name: "kelvin",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.List(cty.Number)),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			k, _ := args[0].AsBigFloat().Float64()
			if k < xrandr.MinTemperature || k > xrandr.MaxTemperature {
				return cty.NilVal, fmt.Errorf("temperature must be between %g and %g", xrandr.MinTemperature, xrandr.MaxTemperature)
			}
			return gainList(color.Kelvin(k)), nil
		},
	})
}

// makeWhiteFunc creates an HCL function returning the channel gains that map
// white onto a hex color.
// Usage: rgb_gain = white("#ffd8a0")
func makeWhiteFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns [r, g, b] gains that map white onto the given color",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.List(cty.Number)),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return gainList(c.Gain()), nil
		},
	})
}

func buildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"kelvin": makeKelvinFunc(),
			"white":  makeWhiteFunc(),
		},
	}
}
