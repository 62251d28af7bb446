//go:build unix

package seqhash

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUTimes returns user and system CPU time used so far
// by this process plus its reaped children, so -fork
// workers are counted once they have exited.
func CPUTimes() (user, sys time.Duration) {
	for _, who := range []int{unix.RUSAGE_SELF, unix.RUSAGE_CHILDREN} {
		var ru unix.Rusage
		if err := unix.Getrusage(who, &ru); err != nil {
			continue
		}
		user += time.Duration(ru.Utime.Nano())
		sys += time.Duration(ru.Stime.Nano())
	}
	return
}
