// Package pretty formats numbers, text and tables for display.
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

var dashes = []byte(strings.Repeat("-", 128))

var equals = []byte(strings.Repeat("=", 128))

// Underline writes a line of text followed by a dashed underline.
func Underline(w io.Writer, format string, args ...interface{}) {
	uline(dashes, w, format, args...)
}

// UnderlineDouble writes a line of text followed by a double underline.
func UnderlineDouble(w io.Writer, format string, args ...interface{}) {
	uline(equals, w, format, args...)
}

func uline(chars []byte, w io.Writer, format string, args ...interface{}) {
	s := strings.TrimSpace(fmt.Sprintf(format, args...))
	fmt.Fprintf(w, "%s\n", s)
	n := len([]rune(s))
	if n > len(chars) {
		n = len(chars)
	}
	w.Write(chars[:n])
	fmt.Fprintln(w)
}

// Round formats f with exactly places decimal places.
func Round(f float64, places int) string {
	return strconv.FormatFloat(scalar.Round(f, places), 'f', places, 64)
}

// Float64 formats f with at most prec decimal places, trimming trailing
// zeros.
func Float64(f float64, prec int) (s string) {
	s = Round(f, prec)
	if strings.IndexByte(s, '.') < 0 {
		return
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return
}

// CondenseWhitespace collapses every run of whitespace, newlines included,
// to one space and trims both ends.
func CondenseWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// SplitDecimal returns the integers on either side of the decimal point in
// the shortest representation of f, so 12.05 gives 12 and 5.
func SplitDecimal(f float64) (whole, frac int64, err error) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	w, fr, _ := strings.Cut(s, ".")
	if whole, err = strconv.ParseInt(w, 10, 64); err != nil {
		err = errors.Wrapf(err, "splitting %s", s)
		return
	}
	if fr == "" {
		return
	}
	if frac, err = strconv.ParseInt(fr, 10, 64); err != nil {
		err = errors.Wrapf(err, "splitting %s", s)
	}
	return
}
