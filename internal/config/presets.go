package config

import (
	"errors"
	"sort"
)

// Pose describes a rigid transform as a rotation about a principal axis
// followed by a translation. Angle and translation entries are expressions
// read by the selected backend, so "pi/3" stays exact under sym.
type Pose struct {
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Axis        string    `yaml:"axis,omitempty" json:"axis,omitempty"`
	Angle       string    `yaml:"angle,omitempty" json:"angle,omitempty"`
	Translation [3]string `yaml:"translation,omitempty" json:"translation"`
}

func (p *Pose) validate() error {
	switch p.Axis {
	case "", "x", "y", "z":
	default:
		return errors.New("axis must be x, y or z")
	}
	if p.Axis != "" && p.Angle == "" {
		return errors.New("rotation without angle")
	}
	return nil
}

// Cells returns the translation with empty entries read as zero.
func (p *Pose) Cells() [3]string {
	var out [3]string
	for i, c := range p.Translation {
		out[i] = c
		if c == "" {
			out[i] = "0"
		}
	}
	return out
}

var Presets = map[string]*Pose{
	"identity": {
		Description: "no motion",
	},
	"half-turn-x": {
		Description: "rotation by pi about x",
		Axis:        "x", Angle: "pi",
	},
	"half-turn-z": {
		Description: "rotation by pi about z",
		Axis:        "z", Angle: "pi",
	},
	"x60": {
		Description: "rotation by pi/3 about x",
		Axis:        "x", Angle: "pi/3",
	},
	"z45": {
		Description: "rotation by pi/4 about z",
		Axis:        "z", Angle: "pi/4",
	},
	"pure-translation": {
		Description: "translation by (1, 2, 3)",
		Translation: [3]string{"1", "2", "3"},
	},
	"screw-z": {
		Description: "rotation by pi/3 about z, then one unit along x",
		Axis:        "z", Angle: "pi/3",
		Translation: [3]string{"1", "0", "0"},
	},
	"elbow": {
		Description: "rotation by pi/2 about y, offset (0.5, 0, 0.25)",
		Axis:        "y", Angle: "pi/2",
		Translation: [3]string{"1/2", "0", "1/4"},
	},
}

func GetPreset(name string) *Pose {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
