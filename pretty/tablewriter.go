package pretty

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TableWriter writes tab aligned tables with an optional indent.
type TableWriter struct {
	*tabwriter.Writer
	indent string
}

// NewTableWriterPad returns a TableWriter with the given padding and indent.
func NewTableWriterPad(out io.Writer, pad int, indent string) *TableWriter {
	return &TableWriter{
		tabwriter.NewWriter(out, 0, 0, pad, ' ', 0),
		indent,
	}
}

// Row emits a row where each argument is a column.
func (w *TableWriter) Row(cols ...interface{}) {
	w.emitRow(false, cols...)
}

// URow calls Row and adds an underline row.
func (w *TableWriter) URow(cols ...interface{}) {
	w.emitRow(false, cols...)
	w.emitRow(true, cols...)
}

// Printf invokes Fprintf on the underlying writer, w/ indent and newline.
func (w *TableWriter) Printf(f string, a ...interface{}) {
	fmt.Fprint(w.Writer, w.indent)
	fmt.Fprintf(w.Writer, f, a...)
	if f == "" || f[len(f)-1] != '\n' {
		fmt.Fprintln(w.Writer)
	}
}

func (w *TableWriter) emitRow(underline bool, cols ...interface{}) {
	fmt.Fprint(w, w.indent)
	for i, c := range cols {
		if i != 0 {
			fmt.Fprint(w, "\t")
		}
		s := fmt.Sprint(c)
		if underline {
			n := len([]rune(s))
			if n > len(dashes) {
				n = len(dashes)
			}
			w.Write(dashes[:n])
		} else {
			fmt.Fprint(w, s)
		}
	}
	fmt.Fprintln(w)
}
