//go:build !(linux || darwin || freebsd)

package ministats

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
)

// Disk implements Source.
func (Host) Disk(_ context.Context, path string) (Disk, error) {
	return Disk{Path: path}, errors.Newf("disk usage unsupported on %s",
		runtime.GOOS)
}
