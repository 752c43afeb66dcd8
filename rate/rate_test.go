package rate

import (
	"testing"
	"time"

	"github.com/heistp/ministats/unit"
	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur unit.Bytes
		d         time.Duration
		want      Rate
	}{
		{"idle", 100, 100, time.Second, 0},
		{"one second", 0, 2048, time.Second, 2048},
		{"two seconds", 1000, 5000, 2 * time.Second, 2000},
		{"half second", 0, unit.Megabyte, 500 * time.Millisecond,
			Rate(2 * unit.Megabyte)},
		{"counter reset", 5000, 10, time.Second, 0},
		{"zero duration", 0, 100, 0, 0},
		{"negative duration", 0, 100, -time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Between(tt.prev, tt.cur, tt.d))
		})
	}
}

func TestReadable(t *testing.T) {
	v, u := Rate(2048).Readable()
	assert.Equal(t, 2.0, v)
	assert.Equal(t, unit.KBps, u)

	v, u = Rate(unit.Megabyte).Readable()
	assert.Equal(t, 1.0, v)
	assert.Equal(t, unit.MBps, u)
}

func TestString(t *testing.T) {
	assert.Equal(t, "0 KB/s", Rate(512).String())
	assert.Equal(t, "2 KB/s", Rate(2048).String())
	assert.Equal(t, "1.5 MB/s", Rate(unit.Megabyte*3/2).String())
	assert.Equal(t, "1.07 GB/s", Rate(1100*unit.Megabyte).String())
}
