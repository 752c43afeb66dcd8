package main

import (
	"github.com/heistp/ministats"
	"github.com/heistp/ministats/pretty"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Sample disk, memory, CPU and network usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			c := ministats.NewCollector(ministats.Params{
				Path:      a.v.GetString("path"),
				Interface: a.v.GetString("interface"),
				Interval:  a.v.GetDuration("interval"),
				Color:     a.v.GetBool("color"),
			}, a.log)
			var s ministats.Snapshot
			if s, err = c.Collect(cmd.Context()); err != nil {
				return
			}
			var style ministats.StyleFunc
			if style, err = a.style(); err != nil {
				return
			}
			pretty.UnderlineDouble(a.out, "Snapshot %s", c.Path)
			return s.Emit(a.out, style)
		},
	}
	f := cmd.Flags()
	f.String("path", ministats.DefaultPath, "path on the filesystem to sample")
	f.String("interface", "", "network interface, or all if empty")
	f.Duration("interval", ministats.DefaultInterval,
		"CPU and network sampling interval")
	return cmd
}
