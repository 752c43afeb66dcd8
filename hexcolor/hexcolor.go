// Package hexcolor parses and formats colors written as hex strings.
package hexcolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrNoDigits is returned by Parse when the string holds no hex digits.
var ErrNoDigits = errors.New("no hex digits")

// maxDigits is the most hex digits that fit in 32 bits.
const maxDigits = 8

// Color is an RGB color with an alpha channel.
type Color struct {
	colorful.Color
	Alpha float64
}

// Parse parses a color such as "#1e90ff", "0x1e90ff" or " 1e90ff ".
// Scanning stops at the first non hex digit. Values that do not fit in 32
// bits saturate, and only the low 24 bits are used for red, green and blue.
//
// If there are no hex digits, Parse returns black and ErrNoDigits.
func Parse(s string, alpha float64) (c Color, err error) {
	c.Alpha = alpha
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	if len(h) > 2 && (h[:2] == "0x" || h[:2] == "0X") {
		h = h[2:]
	}
	n := 0
	for n < len(h) && isHex(h[n]) {
		n++
	}
	if n == 0 {
		err = errors.Mark(errors.Newf("parsing color %q", s), ErrNoDigits)
		return
	}
	// leading zeros never overflow
	digits := strings.TrimLeft(h[:n], "0")
	v := uint64(math.MaxUint32)
	if len(digits) == 0 {
		v = 0
	} else if len(digits) <= maxDigits {
		if v, err = strconv.ParseUint(digits, 16, 32); err != nil {
			return
		}
	}
	c.Color = FromRGB(uint32(v))
	return
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string) Color {
	c, err := Parse(s, 1)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB returns the colorful.Color for a 0xrrggbb value.
func FromRGB(rgb uint32) colorful.Color {
	return colorful.Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
}

// RGB returns the color as 0xrrggbb, truncating each channel.
func (c Color) RGB() uint32 {
	cl := c.Clamped()
	return channel(cl.R)<<16 | channel(cl.G)<<8 | channel(cl.B)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", c.RGB())
}

func (c Color) String() string {
	return c.Hex()
}

func channel(f float64) uint32 {
	return uint32(f * 255)
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
