package ministats

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/heistp/ministats/unit"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// ErrNoInterface is returned when a network interface is not found.
var ErrNoInterface = errors.New("no such interface")

// Host is the Source for the local host.
type Host struct{}

// Memory implements Source.
func (Host) Memory(ctx context.Context) (m Memory, err error) {
	var v *mem.VirtualMemoryStat
	if v, err = mem.VirtualMemoryWithContext(ctx); err != nil {
		return
	}
	m.Total = unit.Bytes(v.Total)
	m.Available = unit.Bytes(v.Available)
	return
}

// CPUPercent implements Source.
func (Host) CPUPercent(ctx context.Context, interval time.Duration) (
	[]float64, error) {
	return cpu.PercentWithContext(ctx, interval, true)
}

// NetCounters implements Source.
func (Host) NetCounters(ctx context.Context, iface string) (c Counters,
	err error) {
	var st []psnet.IOCountersStat
	if st, err = psnet.IOCountersWithContext(ctx, iface != ""); err != nil {
		return
	}
	return sumCounters(st, iface)
}

// sumCounters returns the counters for iface, or the "all" entry when
// iface is empty.
func sumCounters(st []psnet.IOCountersStat, iface string) (c Counters,
	err error) {
	if iface == "" {
		iface = "all"
	}
	for _, s := range st {
		if s.Name == iface {
			c.Received = unit.Bytes(s.BytesRecv)
			c.Sent = unit.Bytes(s.BytesSent)
			return
		}
	}
	err = errors.Mark(errors.Newf("interface %q", iface), ErrNoInterface)
	return
}
