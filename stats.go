package seqhash

import (
	"fmt"
	"time"

	tdigest "github.com/caio/go-tdigest"
)

// Sampler accumulates repetition durations in a t-digest.
type Sampler struct {
	td      *tdigest.TDigest
	n       int
	slowest time.Duration
}

func NewSampler() *Sampler {
	// compression 100 keeps good accuracy at the tails
	// for the handful of samples a benchmark makes.
	td, err := tdigest.New(tdigest.Compression(100))
	panicOn(err)
	return &Sampler{td: td}
}

func (s *Sampler) Add(d time.Duration) {
	panicOn(s.td.Add(float64(d)))
	s.n++
	if d > s.slowest {
		s.slowest = d
	}
}

func (s *Sampler) Count() int {
	return s.n
}

func (s *Sampler) Slowest() time.Duration {
	return s.slowest
}

// Quantile returns the q-th quantile duration; zero
// with no samples.
func (s *Sampler) Quantile(q float64) time.Duration {
	if s.n == 0 {
		return 0
	}
	return time.Duration(s.td.Quantile(q))
}

func (s *Sampler) String() string {
	return fmt.Sprintf("reps=%v q50='%v' q99='%v' q999='%v' slowest='%v'",
		s.n, s.Quantile(0.50), s.Quantile(0.99), s.Quantile(0.999), s.slowest)
}
