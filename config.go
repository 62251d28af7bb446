package seqhash

import (
	"flag"
	"fmt"
)

// Config holds the command-line settings shared by
// cmd/seqhash and cmd/seqhash_mp.
type Config struct {
	// Multi is set by the command, not by a flag; it
	// decides which flags SetFlags registers.
	Multi bool

	Reps    int
	JSON    bool
	Verbose bool
	Version bool

	// multi-worker only
	Workers  int
	Fork     bool
	Progress bool
}

func (c *Config) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Reps, "reps", 1, "repeat the whole computation this many times; with more than one, latency quantiles go to stderr")
	fs.BoolVar(&c.JSON, "json", false, "print one JSON report line instead of the result lines")
	fs.BoolVar(&c.Verbose, "v", false, "verbose debug logging to stderr")
	fs.BoolVar(&c.Version, "version", false, "show version and exit")

	if c.Multi {
		fs.IntVar(&c.Workers, "workers", 0, "number of workers; 0 means one per logical processor")
		fs.BoolVar(&c.Fork, "fork", false, "run each worker as a child OS process instead of a goroutine")
		fs.BoolVar(&c.Progress, "progress", false, "show a worker progress meter on stderr when it is a terminal")
	}
}

func (c *Config) FinishConfig(fs *flag.FlagSet) (err error) {
	if c.Reps < 1 {
		return fmt.Errorf("-reps must be at least 1; got %v", c.Reps)
	}
	if c.Workers < 0 {
		return fmt.Errorf("-workers must not be negative; got %v", c.Workers)
	}
	return
}
