package seqhash

import (
	"fmt"
	"time"
)

// WallTimer measures wall-clock time from its creation.
type WallTimer struct {
	t0 time.Time
}

func NewWallTimer() *WallTimer {
	return &WallTimer{t0: time.Now()}
}

func (w *WallTimer) Elapsed() time.Duration {
	return time.Since(w.t0)
}

// Line renders the elapsed time in whole milliseconds,
// as "time: 1670ms".
func (w *WallTimer) Line() string {
	return TimeLine(w.Elapsed())
}

func TimeLine(d time.Duration) string {
	return fmt.Sprintf("time: %vms", d.Milliseconds())
}

// ms is d in fractional milliseconds.
func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
