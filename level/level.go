// Package level classifies usage and battery ratios into display levels.
//
// A Level is a category only. Mapping a Level to an actual color is left to
// presentation code.
package level

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Level is a display category for a ratio.
type Level int

const (
	// None means the value is shown as plain text.
	None Level = iota
	Normal
	Warning
	Critical
)

var names = [...]string{"none", "normal", "warning", "critical"}

// ErrInvalidRatio is returned when a ratio cannot be parsed.
var ErrInvalidRatio = errors.New("invalid ratio")

func (l Level) String() string {
	if l < None || l > Critical {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return names[l]
}

// Usage returns the Level for a usage ratio, where 0.6 to 0.8 inclusive is
// a Warning and above that, up to 1, is Critical. With reversed, high
// ratios are good, so the Critical and Normal ranges swap. Without color,
// the Level is always None.
//
// Ratios outside [0, 1] take the low range's Level.
func Usage(ratio float64, reversed, color bool) Level {
	if !color {
		return None
	}
	switch {
	case ratio >= 0.6 && ratio <= 0.8:
		return Warning
	case ratio > 0.8 && ratio <= 1:
		if reversed {
			return Normal
		}
		return Critical
	default:
		if reversed {
			return Critical
		}
		return Normal
	}
}

// Battery returns the Level for a battery charge ratio. Charge below 0.2,
// or outside [0, 1], is Critical even without color. A full battery is
// None.
func Battery(ratio float64, color bool) Level {
	switch {
	case ratio >= 0.2 && ratio <= 0.4:
		if !color {
			return None
		}
		return Warning
	case ratio > 0.4 && ratio <= 1:
		if ratio == 1 || !color {
			return None
		}
		return Normal
	default:
		return Critical
	}
}

// ParseRatio parses a ratio given either as a fraction ("0.75") or a
// percentage ("75%").
func ParseRatio(s string) (r float64, err error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	if r, err = strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err != nil {
		err = errors.Mark(errors.Wrapf(err, "parsing ratio %q", s),
			ErrInvalidRatio)
		return
	}
	if pct {
		r /= 100
	}
	return
}
