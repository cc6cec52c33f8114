// Released under an MIT license. See LICENSE.

//go:build darwin || freebsd || linux

package builtin

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func seconds() (float64, error) {
	var ts unix.Timespec

	err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts)
	if err != nil {
		return 0, fmt.Errorf("clock: %w", err)
	}

	sec, nsec := ts.Unix()

	return float64(sec) + float64(nsec)/1e9, nil
}
