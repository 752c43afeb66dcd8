package ministats

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/heistp/ministats/level"
	"github.com/heistp/ministats/rate"
	"github.com/heistp/ministats/unit"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInterval is returned for sampling intervals out of range.
var ErrInterval = errors.New("invalid sampling interval")

// Counters are cumulative network byte counters.
type Counters struct {
	Received unit.Bytes
	Sent     unit.Bytes
}

// Source reads raw statistics from a host.
type Source interface {
	// Disk returns the usage of the filesystem holding path.
	Disk(ctx context.Context, path string) (Disk, error)

	// Memory returns physical memory usage.
	Memory(ctx context.Context) (Memory, error)

	// CPUPercent returns the per core load, in percent, over interval.
	CPUPercent(ctx context.Context, interval time.Duration) ([]float64, error)

	// NetCounters returns the byte counters for iface, or the sum over all
	// interfaces if iface is empty.
	NetCounters(ctx context.Context, iface string) (Counters, error)
}

// Params contains the collection parameters.
type Params struct {
	// Path selects the filesystem to sample (default DefaultPath).
	Path string

	// Interface is the network interface to sample, or all if empty.
	Interface string

	// Interval is the CPU and network sampling interval (default
	// DefaultInterval).
	Interval time.Duration

	// Color enables display levels. Without it, every Level is None.
	Color bool
}

func (p *Params) init() error {
	if p.Path == "" {
		p.Path = DefaultPath
	}
	if p.Interval == 0 {
		p.Interval = DefaultInterval
	}
	if p.Interval < 0 || p.Interval > MaxInterval {
		return errors.Mark(errors.Newf("interval %s not in (0, %s]",
			p.Interval, MaxInterval), ErrInterval)
	}
	return nil
}

// Collector samples statistics from a Source.
type Collector struct {
	Source Source
	Log    *zap.Logger
	Params
}

// NewCollector returns a Collector for the local host.
func NewCollector(p Params, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{Host{}, log, p}
}

// Collect samples every statistic. The CPU and network samples each take
// one Interval, and run concurrently.
func (c *Collector) Collect(ctx context.Context) (s Snapshot, err error) {
	if err = c.Params.init(); err != nil {
		return
	}
	if c.Source == nil {
		c.Source = Host{}
	}
	if c.Log == nil {
		c.Log = zap.NewNop()
	}
	c.Log.Debug("collecting",
		zap.String("path", c.Path),
		zap.String("interface", c.Interface),
		zap.Duration("interval", c.Interval))

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		s.Disk, err = c.disk(ctx)
		return
	})
	p.Go(func(ctx context.Context) (err error) {
		s.Memory, err = c.memory(ctx)
		return
	})
	p.Go(func(ctx context.Context) (err error) {
		s.CPU, err = c.cpu(ctx)
		return
	})
	p.Go(func(ctx context.Context) (err error) {
		s.Network, err = c.network(ctx)
		return
	})
	err = p.Wait()
	s.Interval = c.Interval
	return
}

func (c *Collector) disk(ctx context.Context) (d Disk, err error) {
	if d, err = c.Source.Disk(ctx, c.Path); err != nil {
		err = errors.Wrapf(err, "disk usage of %s", c.Path)
		return
	}
	d.Level = level.Usage(d.Ratio(), false, c.Color)
	c.Log.Debug("disk",
		zap.Stringer("used", d.Used()),
		zap.Stringer("total", d.Total),
		zap.Stringer("level", d.Level))
	return
}

func (c *Collector) memory(ctx context.Context) (m Memory, err error) {
	if m, err = c.Source.Memory(ctx); err != nil {
		err = errors.Wrap(err, "memory usage")
		return
	}
	m.Level = level.Usage(m.Ratio(), false, c.Color)
	c.Log.Debug("memory",
		zap.Stringer("used", m.Used()),
		zap.Stringer("total", m.Total),
		zap.Stringer("level", m.Level))
	return
}

func (c *Collector) cpu(ctx context.Context) (u CPU, err error) {
	var pct []float64
	if pct, err = c.Source.CPUPercent(ctx, c.Interval); err != nil {
		err = errors.Wrap(err, "cpu usage")
		return
	}
	u = summarizeCPU(pct)
	u.Level = level.Usage(u.Mean, false, c.Color)
	c.Log.Debug("cpu",
		zap.Int("cores", u.Cores),
		zap.Float64("mean", u.Mean),
		zap.Float64("max", u.Max))
	return
}

// summarizeCPU converts per core percentages to fractions of one.
func summarizeCPU(pct []float64) (u CPU) {
	u.Cores = len(pct)
	if len(pct) == 0 {
		return
	}
	f := make([]float64, len(pct))
	floats.ScaleTo(f, 0.01, pct)
	u.Mean = stat.Mean(f, nil)
	u.Max = floats.Max(f)
	return
}

func (c *Collector) network(ctx context.Context) (n Network, err error) {
	n.Interface = c.Interface
	var prev, cur Counters
	if prev, err = c.Source.NetCounters(ctx, c.Interface); err != nil {
		err = errors.Wrapf(err, "network counters of %q", c.Interface)
		return
	}
	start := time.Now()
	t := time.NewTimer(c.Interval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		err = ctx.Err()
		return
	}
	if cur, err = c.Source.NetCounters(ctx, c.Interface); err != nil {
		err = errors.Wrapf(err, "network counters of %q", c.Interface)
		return
	}
	n.Download, n.Upload = rates(prev, cur, time.Since(start))
	c.Log.Debug("network",
		zap.String("interface", n.Interface),
		zap.Stringer("download", n.Download),
		zap.Stringer("upload", n.Upload))
	return
}

// rates returns the download and upload rates between two samples.
func rates(prev, cur Counters, d time.Duration) (down, up rate.Rate) {
	down = rate.Between(prev.Received, cur.Received, d)
	up = rate.Between(prev.Sent, cur.Sent, d)
	return
}
