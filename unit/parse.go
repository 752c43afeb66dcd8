package unit

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	units "github.com/docker/go-units"
)

// ErrInvalid is returned when a byte quantity cannot be parsed.
var ErrInvalid = errors.New("invalid byte quantity")

// Parse parses a byte quantity such as "1536", "2KB", "1.5 MB", "3g" or
// "1KiB". The unit is an optional b, or one of k, m, g, t or p followed by
// an optional i and an optional b, all case insensitive multiples of 1024.
// Fractional bytes are truncated.
func Parse(s string) (b Bytes, err error) {
	s = strings.TrimSpace(s)
	var n int64
	if n, err = units.RAMInBytes(s); err != nil {
		err = errors.Mark(errors.Wrapf(err, "parsing %q", s), ErrInvalid)
		return
	}
	// the float conversion wraps to MinInt64 on amd64 but saturates at
	// MaxInt64 on arm64
	if n < 0 || n == math.MaxInt64 {
		err = errors.Mark(errors.Newf("byte quantity %q out of range", s),
			ErrInvalid)
		return
	}
	b = Bytes(n)
	return
}
