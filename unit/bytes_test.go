package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerived(t *testing.T) {
	b := 3 * Gigabyte
	assert.Equal(t, float64(3*1024*1024), b.Kilobytes())
	assert.Equal(t, float64(3*1024), b.Megabytes())
	assert.Equal(t, 3.0, b.Gigabytes())
	assert.Equal(t, 0.5, Bytes(512).Kilobytes())
}

func TestRate(t *testing.T) {
	tests := []struct {
		name  string
		bytes Bytes
		value float64
		unit  string
	}{
		{"zero", 0, 0, KBps},
		{"one", 1, 0, KBps},
		{"under kilobyte", 1023, 0, KBps},
		{"kilobyte", 1024, 1, KBps},
		{"two kilobytes", 2048, 2, KBps},
		{"fractional kilobytes", 1536, 1.5, KBps},
		{"rounded kilobytes", 1100, 1.07, KBps},
		{"just under megabyte", Megabyte - 1, 1024, KBps},
		{"megabyte", 1048576, 1, MBps},
		{"megabytes", 5*Megabyte + Megabyte/4, 5.25, MBps},
		{"gigabyte", Gigabyte, 1, GBps},
		{"terabyte", Terabyte, 1024, GBps},
		{"max", math.MaxInt64, 8589934592, GBps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, u := tt.bytes.Rate()
			assert.InDelta(t, tt.value, v, 1e-9)
			assert.Equal(t, tt.unit, u)
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		bytes Bytes
		want  string
	}{
		{0, "0 KB"},
		{1023, "0 KB"},
		{1024, "1 KB"},
		{1536, "2 KB"},
		{2560, "3 KB"},
		{2048, "2 KB"},
		{1100 * Kilobyte, "1.07 MB"},
		{Megabyte, "1.00 MB"},
		{Megabyte + Megabyte/2, "1.50 MB"},
		{1073741824, "1.00 GB"},
		{Gigabyte * 5 / 2, "2.50 GB"},
		{2 * Terabyte, "2048.00 GB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bytes.Size())
			assert.Equal(t, tt.want, tt.bytes.String())
		})
	}
}

func TestSubKilobyte(t *testing.T) {
	for b := Bytes(0); b < Kilobyte; b++ {
		v, u := b.Rate()
		if v != 0 || u != KBps {
			t.Fatalf("%d: got (%v, %s)", b, v, u)
		}
		if s := b.Size(); s != "0 KB" {
			t.Fatalf("%d: got %q", b, s)
		}
	}
}

func TestUnitMonotonic(t *testing.T) {
	order := map[string]int{KBps: 0, MBps: 1, GBps: 2}
	prev := 0
	for b := Bytes(1); b > 0 && b < math.MaxInt64/3; b = b*3 + 7 {
		_, u := b.Rate()
		assert.GreaterOrEqual(t, order[u], prev, "unit regressed at %d", b)
		prev = order[u]
	}
	assert.Equal(t, 2, prev)
}

func TestNegative(t *testing.T) {
	v, u := Bytes(-2048).Rate()
	assert.Equal(t, -2.0, v)
	assert.Equal(t, KBps, u)
	assert.Equal(t, "-3 KB", Bytes(-3072).Size())
}
