// Package rate provides throughput in bytes per second.
package rate

import (
	"time"

	"github.com/heistp/ministats/pretty"
	"github.com/heistp/ministats/unit"
)

// Rate is a rate in bytes per second.
type Rate int64

// Between returns the Rate for a counter that went from prev to cur over d.
// Counter resets and non-positive durations give a zero Rate.
func Between(prev, cur unit.Bytes, d time.Duration) Rate {
	if d <= 0 || cur < prev {
		return 0
	}
	return Rate(float64(cur-prev) / d.Seconds())
}

// Bytes returns the number of bytes transferred in one second.
func (r Rate) Bytes() unit.Bytes {
	return unit.Bytes(r)
}

// Readable returns the Rate as a value and unit, e.g. 1.5 "MB/s".
func (r Rate) Readable() (float64, string) {
	return r.Bytes().Rate()
}

func (r Rate) String() string {
	v, u := r.Readable()
	return pretty.Float64(v, 2) + " " + u
}
