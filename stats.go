// Package ministats collects host statistics for a status display: disk,
// memory, CPU and network usage, each with a display level.
package ministats

import (
	"fmt"
	"io"
	"time"

	"github.com/heistp/ministats/level"
	"github.com/heistp/ministats/pretty"
	"github.com/heistp/ministats/rate"
	"github.com/heistp/ministats/unit"
)

// Disk is the usage of the filesystem holding Path.
type Disk struct {
	Path string

	// Total is the filesystem size.
	Total unit.Bytes

	// Free is the free space, including space reserved for root.
	Free unit.Bytes

	// Available is the free space available to unprivileged users.
	Available unit.Bytes

	Level level.Level
}

// Used returns the space in use.
func (d Disk) Used() unit.Bytes {
	return d.Total - d.Free
}

// Ratio returns the used fraction of the space usable by unprivileged users.
func (d Disk) Ratio() float64 {
	return ratio(d.Used(), d.Used()+d.Available)
}

// Memory is the usage of physical memory.
type Memory struct {
	Total     unit.Bytes
	Available unit.Bytes
	Level     level.Level
}

// Used returns the memory in use.
func (m Memory) Used() unit.Bytes {
	return m.Total - m.Available
}

// Ratio returns the used fraction of memory.
func (m Memory) Ratio() float64 {
	return ratio(m.Used(), m.Total)
}

// CPU is the load across all cores, as fractions of one.
type CPU struct {
	// Mean is the mean load over the cores.
	Mean float64

	// Max is the load of the busiest core.
	Max float64

	// Cores is the number of cores sampled.
	Cores int

	Level level.Level
}

// Network is the throughput of one interface, or all interfaces if
// Interface is empty.
type Network struct {
	Interface string
	Download  rate.Rate
	Upload    rate.Rate
}

// Snapshot is one sample of all statistics.
type Snapshot struct {
	Disk    Disk
	Memory  Memory
	CPU     CPU
	Network Network

	// Interval is the CPU and network sampling interval.
	Interval time.Duration
}

// StyleFunc renders s for display at Level l.
type StyleFunc func(l level.Level, s string) string

// Plain is a StyleFunc that returns text unchanged.
func Plain(_ level.Level, s string) string {
	return s
}

// Emit prints the Snapshot as a table. If style is nil, Plain is used.
func (s *Snapshot) Emit(w io.Writer, style StyleFunc) error {
	if style == nil {
		style = Plain
	}
	tw := pretty.NewTableWriterPad(w, 2, "")
	tw.URow("Stat", "Used", "Total", "Usage")
	tw.Row("Disk "+s.Disk.Path, s.Disk.Used(), s.Disk.Total,
		style(s.Disk.Level, percent(s.Disk.Ratio())))
	tw.Row("Memory", s.Memory.Used(), s.Memory.Total,
		style(s.Memory.Level, percent(s.Memory.Ratio())))
	tw.Row("CPU", fmt.Sprintf("%d cores", s.CPU.Cores),
		"max "+percent(s.CPU.Max), style(s.CPU.Level, percent(s.CPU.Mean)))
	iface := s.Network.Interface
	if iface == "" {
		iface = "all"
	}
	tw.Row("Network "+iface, "down "+s.Network.Download.String(),
		"up "+s.Network.Upload.String(), "")
	if s.Interval > 0 {
		tw.Printf("Sampled over %s", s.Interval)
	}
	return tw.Flush()
}

func percent(r float64) string {
	return pretty.Float64(r*100, 1) + "%"
}

func ratio(part, whole unit.Bytes) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
