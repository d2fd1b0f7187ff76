package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsvensson/xcolor/internal/xrandr"
)

// adjustFlags holds the flags shared by set and show.
type adjustFlags struct {
	output      string
	brightness  float64
	gamma       float64
	redGamma    float64
	greenGamma  float64
	blueGamma   float64
	saturation  float64
	rgbGain     []float64
	temperature float64
	white       string
	ctm         []float64
}

func (f *adjustFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "", "output to adjust, as listed by xrandr (default \""+xrandr.DefaultOutput+"\")")
	fs.Float64VarP(&f.brightness, "brightness", "b", 1, "brightness multiplier, 0.2..4.0; clips, so prefer the backlight")
	fs.Float64VarP(&f.gamma, "gamma", "g", 1, "overall gamma, 0.2..10.0")
	fs.Float64VarP(&f.redGamma, "red-gamma", "R", 1, "red gamma, 0.2..10.0")
	fs.Float64VarP(&f.greenGamma, "green-gamma", "G", 1, "green gamma, 0.2..10.0")
	fs.Float64VarP(&f.blueGamma, "blue-gamma", "B", 1, "blue gamma, 0.2..10.0")
	fs.Float64VarP(&f.saturation, "saturation", "s", 1, "saturation, 0.0..4.0")
	fs.Float64SliceVar(&f.rgbGain, "rgb-gain", nil, "per-channel gain as r,g,b")
	fs.Float64VarP(&f.temperature, "temperature", "t", 6600, "color temperature in Kelvin, 1000..40000")
	fs.StringVarP(&f.white, "white", "w", "", "white point as #rrggbb")
	fs.Float64SliceVar(&f.ctm, "ctm", nil, "explicit matrix as rr,rg,rb,gr,gg,gb,br,bg,bb (row-major)")
}

// settings returns the adjustments for the flags the user actually passed.
func (f *adjustFlags) settings(cmd *cobra.Command) xrandr.Settings {
	fs := cmd.Flags()
	s := xrandr.Settings{
		Output:     f.output,
		WhitePoint: f.white,
	}

	float := func(name string, v float64) *float64 {
		if !fs.Changed(name) {
			return nil
		}
		return &v
	}
	s.Brightness = float("brightness", f.brightness)
	s.Gamma = float("gamma", f.gamma)
	s.RedGamma = float("red-gamma", f.redGamma)
	s.GreenGamma = float("green-gamma", f.greenGamma)
	s.BlueGamma = float("blue-gamma", f.blueGamma)
	s.Saturation = float("saturation", f.saturation)
	s.Temperature = float("temperature", f.temperature)

	if fs.Changed("rgb-gain") {
		s.RGBGain = f.rgbGain
	}
	if fs.Changed("ctm") {
		s.CTM = f.ctm
	}
	return s
}
