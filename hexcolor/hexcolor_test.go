package hexcolor

import (
	"testing"

	"github.com/cockroachdb/errors"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#1e90ff", "#1e90ff"},
		{"1E90FF", "#1e90ff"},
		{"  #ff0000\n", "#ff0000"},
		{"0x00ff00", "#00ff00"},
		{"#fff", "#000fff"},
		{"#12345678", "#345678"},
		{"#123456789", "#ffffff"},
		{"#000000000000ff0000", "#ff0000"},
		{"#0000000000", "#000000"},
		{"#00000001234567890", "#ffffff"},
		{"#abcxyz", "#000abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestParseChannels(t *testing.T) {
	c, err := Parse("#ff8000", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.R)
	assert.InDelta(t, 128.0/255, c.G, 1e-12)
	assert.Equal(t, 0.0, c.B)
	assert.Equal(t, 0.5, c.Alpha)
	assert.Equal(t, uint32(0xff8000), c.RGB())
}

func TestParseNoDigits(t *testing.T) {
	for _, in := range []string{"", "#", "  ", "#zzz", "x10"} {
		c, err := Parse(in, 1)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrNoDigits))
		assert.Equal(t, "#000000", c.Hex())
	}
}

func TestHexTruncates(t *testing.T) {
	c := Color{Color: colorful.Color{R: 0.999, G: 0.5, B: 1.2}, Alpha: 1}
	assert.Equal(t, "#fe7fff", c.Hex())
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "#00aa00", MustParse("#00aa00").String())
	assert.Panics(t, func() { MustParse("nope") })
}
