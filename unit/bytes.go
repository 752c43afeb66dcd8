// Package unit provides byte quantities and their readable forms.
package unit

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Bytes is a number of bytes.
type Bytes int64

const (
	Byte     Bytes = 1
	Kilobyte       = 1024 * Byte
	Megabyte       = 1024 * Kilobyte
	Gigabyte       = 1024 * Megabyte
	Terabyte       = 1024 * Gigabyte
)

// Rate units, in increasing order.
const (
	KBps = "KB/s"
	MBps = "MB/s"
	GBps = "GB/s"
)

// Kilobytes returns the Bytes in kilobytes.
func (b Bytes) Kilobytes() float64 {
	return float64(b) / 1024
}

// Megabytes returns the Bytes in megabytes.
func (b Bytes) Megabytes() float64 {
	return b.Kilobytes() / 1024
}

// Gigabytes returns the Bytes in gigabytes.
func (b Bytes) Gigabytes() float64 {
	return b.Megabytes() / 1024
}

// Rate returns the Bytes as a per second value and unit, scaled to the
// largest unit the value reaches. Values under a kilobyte are reported as
// zero KB/s. Negative values are reported in KB/s.
func (b Bytes) Rate() (value float64, unit string) {
	switch {
	case b < 0:
		return scalar.Round(b.Kilobytes(), 2), KBps
	case b < Kilobyte:
		return 0, KBps
	case b < Megabyte:
		return scalar.Round(b.Kilobytes(), 2), KBps
	case b < Gigabyte:
		return scalar.Round(b.Megabytes(), 2), MBps
	default:
		return scalar.Round(b.Gigabytes(), 2), GBps
	}
}

// Size returns the Bytes as a string, with KB rounded to whole numbers and
// MB and GB to two decimal places. Values under a kilobyte are "0 KB".
func (b Bytes) Size() string {
	switch {
	case b < 0:
		return fixed(b.Kilobytes(), 0) + " KB"
	case b < Kilobyte:
		return "0 KB"
	case b < Megabyte:
		return fixed(b.Kilobytes(), 0) + " KB"
	case b < Gigabyte:
		return fixed(b.Megabytes(), 2) + " MB"
	default:
		return fixed(b.Gigabytes(), 2) + " GB"
	}
}

func (b Bytes) String() string {
	return b.Size()
}

// fixed rounds half away from zero before formatting, so 1.5 KB is "2".
func fixed(f float64, places int) string {
	return strconv.FormatFloat(scalar.Round(f, places), 'f', places, 64)
}
