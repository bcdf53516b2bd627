package executor

import (
	"fmt"
	"strings"
)

// AngleMode selects the unit of trigonometric arguments.
type AngleMode int

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	if m == Degrees {
		return "degrees"
	}
	return "radians"
}

// ParseAngleMode accepts "degrees"/"deg" and "radians"/"rad".
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rad", "radian", "radians":
		return Radians, nil
	case "deg", "degree", "degrees":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("unknown angle mode %q", s)
}

// Set implements the pflag.Value interface.
func (m *AngleMode) Set(s string) error {
	mode, err := ParseAngleMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements the pflag.Value interface.
func (m *AngleMode) Type() string { return "mode" }

func (m AngleMode) toRadians(x float64) float64 {
	if m == Degrees {
		return x * degToRad
	}
	return x
}
