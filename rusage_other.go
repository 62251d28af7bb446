//go:build !unix

package seqhash

import "time"

// CPUTimes is not available here; it reports zero.
func CPUTimes() (user, sys time.Duration) {
	return
}
