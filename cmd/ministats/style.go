package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/heistp/ministats"
	"github.com/heistp/ministats/hexcolor"
	"github.com/heistp/ministats/level"
	"github.com/spf13/viper"
)

// defaultColors are the level colors, overridable with colors.<level>.
var defaultColors = map[level.Level]string{
	level.Normal:   "#34c759",
	level.Warning:  "#ff9500",
	level.Critical: "#ff3b30",
}

// newStyle returns a StyleFunc that colors text by Level for out. Colors
// are only emitted if out is a terminal that supports them.
func newStyle(out io.Writer, v *viper.Viper) (ministats.StyleFunc, error) {
	r := lipgloss.NewRenderer(out)
	styles := make(map[level.Level]lipgloss.Style, len(defaultColors))
	for l, def := range defaultColors {
		s := def
		if c := v.GetString("colors." + l.String()); c != "" {
			s = c
		}
		c, err := hexcolor.Parse(s, 1)
		if err != nil {
			return nil, err
		}
		styles[l] = r.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return func(l level.Level, s string) string {
		st, ok := styles[l]
		if !ok {
			return s
		}
		return st.Render(s)
	}, nil
}
