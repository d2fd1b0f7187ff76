// Package xcolor adjusts display color through xrandr's CTM property.
package xcolor

import (
	"fmt"

	"github.com/jsvensson/xcolor/internal/config"
	"github.com/jsvensson/xcolor/internal/xrandr"
)

// Profile is a named profile resolved from a profiles file, ready to apply.
type Profile struct {
	Name     string
	Settings xrandr.Settings
	Tool     []string // nil means xrandr.DefaultTool
}

// LoadProfile reads the profiles file at path and resolves the named profile.
func LoadProfile(path, name string) (*Profile, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}

	p, err := f.Profile(name)
	if err != nil {
		return nil, err
	}

	var tool []string
	if f.Tool != "" {
		tool, err = xrandr.ParseTool(f.Tool)
		if err != nil {
			return nil, fmt.Errorf("loading profiles: %w", err)
		}
	}

	return &Profile{
		Name:     p.Name,
		Settings: p.Settings(f.Output),
		Tool:     tool,
	}, nil
}
