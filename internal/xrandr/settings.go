// Package xrandr turns user-facing color settings into an xrandr invocation.
package xrandr

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/jsvensson/xcolor/internal/color"
	"github.com/jsvensson/xcolor/internal/ctm"
)

// DefaultOutput is the display targeted when no output is named.
const DefaultOutput = "eDP"

// Accepted ranges, inclusive.
const (
	MinBrightness  = 0.2
	MaxBrightness  = 4.0
	MinGamma       = 0.2
	MaxGamma       = 10.0
	MinSaturation  = 0.0
	MaxSaturation  = 4.0
	MinTemperature = 1000.0
	MaxTemperature = 40000.0
)

var (
	// ErrNothingToApply is returned for settings that would not change anything.
	ErrNothingToApply = errors.New("no adjustments given")

	// ErrConflictingMatrix is returned when more than one source for the CTM is given.
	ErrConflictingMatrix = errors.New("only one of saturation, rgb gain, temperature, white point, ctm or reset may be given")

	// ErrResetCombined is returned when reset is combined with brightness or gamma.
	ErrResetCombined = errors.New("reset cannot be combined with brightness or gamma")
)

// Settings describes one adjustment of a single output. Nil pointers and
// empty slices mean "leave unchanged".
type Settings struct {
	Output      string
	Brightness  *float64
	Gamma       *float64
	RedGamma    *float64
	GreenGamma  *float64
	BlueGamma   *float64
	Saturation  *float64
	RGBGain     []float64
	Temperature *float64
	WhitePoint  string
	CTM         []float64
	Reset       bool
}

// Validate checks every value against its accepted range and reports all
// violations at once.
func (s Settings) Validate() error {
	var errs []error

	check := func(name string, v *float64, lo, hi float64) {
		if v != nil && !(*v >= lo && *v <= hi) {
			errs = append(errs, fmt.Errorf("%s must be between %s and %s, got %s",
				name, formatFloat(lo), formatFloat(hi), formatFloat(*v)))
		}
	}
	check("brightness", s.Brightness, MinBrightness, MaxBrightness)
	check("gamma", s.Gamma, MinGamma, MaxGamma)
	check("red gamma", s.RedGamma, MinGamma, MaxGamma)
	check("green gamma", s.GreenGamma, MinGamma, MaxGamma)
	check("blue gamma", s.BlueGamma, MinGamma, MaxGamma)
	check("saturation", s.Saturation, MinSaturation, MaxSaturation)
	check("temperature", s.Temperature, MinTemperature, MaxTemperature)

	if s.RGBGain != nil && len(s.RGBGain) != 3 {
		errs = append(errs, fmt.Errorf("rgb gain needs 3 values, got %d", len(s.RGBGain)))
	}
	if err := checkFinite("rgb gain", s.RGBGain); err != nil {
		errs = append(errs, err)
	}
	if err := checkFinite("ctm", s.CTM); err != nil {
		errs = append(errs, err)
	}
	if s.WhitePoint != "" {
		if _, err := color.ParseHex(s.WhitePoint); err != nil {
			errs = append(errs, fmt.Errorf("white point: %w", err))
		}
	}
	if s.CTM != nil {
		if _, err := ctm.FromExplicit(s.CTM); err != nil {
			errs = append(errs, err)
		}
	}

	if s.matrixSources() > 1 {
		errs = append(errs, ErrConflictingMatrix)
	}
	if s.Reset && s.adjustsLevels() {
		errs = append(errs, ErrResetCombined)
	}
	if len(errs) == 0 && s.matrixSources() == 0 && !s.adjustsLevels() {
		return ErrNothingToApply
	}

	return errors.Join(errs...)
}

// checkFinite rejects NaN and infinite entries, which have no fixed-point
// encoding.
func checkFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s value %d must be finite, got %s", name, i+1, formatFloat(v))
		}
	}
	return nil
}

func (s Settings) matrixSources() int {
	n := 0
	for _, set := range []bool{
		s.Saturation != nil,
		s.RGBGain != nil,
		s.Temperature != nil,
		s.WhitePoint != "",
		s.CTM != nil,
		s.Reset,
	} {
		if set {
			n++
		}
	}
	return n
}

func (s Settings) adjustsLevels() bool {
	return s.Brightness != nil || s.adjustsGamma()
}

func (s Settings) adjustsGamma() bool {
	return s.Gamma != nil || s.RedGamma != nil || s.GreenGamma != nil || s.BlueGamma != nil
}

// Matrix builds the CTM selected by s. The boolean is false when s does not
// touch the CTM.
func (s Settings) Matrix() (ctm.Matrix, bool, error) {
	switch {
	case s.Reset:
		return ctm.Identity(), true, nil
	case s.Saturation != nil:
		return ctm.FromSaturation(*s.Saturation), true, nil
	case s.RGBGain != nil:
		if len(s.RGBGain) != 3 {
			return ctm.Matrix{}, false, fmt.Errorf("rgb gain needs 3 values, got %d", len(s.RGBGain))
		}
		return ctm.FromGain(s.RGBGain[0], s.RGBGain[1], s.RGBGain[2]), true, nil
	case s.Temperature != nil:
		return ctm.FromTemperature(*s.Temperature), true, nil
	case s.WhitePoint != "":
		c, err := color.ParseHex(s.WhitePoint)
		if err != nil {
			return ctm.Matrix{}, false, fmt.Errorf("white point: %w", err)
		}
		return ctm.FromWhitePoint(c), true, nil
	case s.CTM != nil:
		m, err := ctm.FromExplicit(s.CTM)
		if err != nil {
			return ctm.Matrix{}, false, err
		}
		return m, true, nil
	}
	return ctm.Identity(), false, nil
}

// GammaArg returns the value for --gamma: a single number when only the
// overall gamma is set, otherwise "R:G:B" with unset channels falling back to
// the overall gamma (or 1).
func (s Settings) GammaArg() (string, bool) {
	if !s.adjustsGamma() {
		return "", false
	}
	if s.RedGamma == nil && s.GreenGamma == nil && s.BlueGamma == nil {
		return formatFloat(*s.Gamma), true
	}

	base := 1.0
	if s.Gamma != nil {
		base = *s.Gamma
	}
	channel := func(v *float64) string {
		if v == nil {
			return formatFloat(base)
		}
		return formatFloat(*v)
	}
	return channel(s.RedGamma) + ":" + channel(s.GreenGamma) + ":" + channel(s.BlueGamma), true
}

// OutputName returns the display to target.
func (s Settings) OutputName() string {
	if s.Output == "" {
		return DefaultOutput
	}
	return s.Output
}

// Args validates s and returns the xrandr arguments that apply it.
func (s Settings) Args() ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	args := []string{"--output", s.OutputName()}

	if s.Reset {
		identity := ctm.ArgumentString(ctm.Encode(ctm.Identity()))
		return append(args,
			"--set", "CTM", identity,
			"--brightness", formatFloat(1),
			"--gamma", formatFloat(1),
		), nil
	}

	if s.Brightness != nil {
		args = append(args, "--brightness", formatFloat(*s.Brightness))
	}
	if g, ok := s.GammaArg(); ok {
		args = append(args, "--gamma", g)
	}

	m, ok, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	if ok {
		args = append(args, "--set", "CTM", ctm.ArgumentString(ctm.Encode(m)))
	}

	return args, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
