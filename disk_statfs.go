//go:build linux || darwin || freebsd

package ministats

import (
	"context"

	"github.com/heistp/ministats/unit"
	"golang.org/x/sys/unix"
)

// Disk implements Source.
func (Host) Disk(_ context.Context, path string) (d Disk, err error) {
	var st unix.Statfs_t
	if err = unix.Statfs(path, &st); err != nil {
		return
	}
	bs := unit.Bytes(st.Bsize)
	d = Disk{
		Path:      path,
		Total:     unit.Bytes(st.Blocks) * bs,
		Free:      unit.Bytes(st.Bfree) * bs,
		Available: unit.Bytes(st.Bavail) * bs,
	}
	return
}
