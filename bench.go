package seqhash

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/glycerine/seqhash/progress"
)

// Bench is one benchmark command. Main does the whole
// invocation and returns the exit code; the cmd/
// mains only wire in os.Args and os.Exit.
type Bench struct {
	Name  string
	Multi bool

	Stdout io.Writer

	// Runner overrides the worker runner that -fork
	// would otherwise pick.
	Runner Runner

	// Cores overrides LogicalCores() when > 0.
	Cores int
}

func NewSingleBench() *Bench {
	return &Bench{Name: "seqhash", Stdout: os.Stdout}
}

func NewMultiBench() *Bench {
	return &Bench{Name: "seqhash_mp", Multi: true, Stdout: os.Stdout}
}

// Main runs with args, the command line after the
// program name.
func (b *Bench) Main(args []string) (exitCode int) {
	timer := NewWallTimer()
	out := b.Stdout

	if b.Multi && isChild(args) {
		showPid = true
		panicOn(RunChild(out, args))
		return ExitOK
	}

	cfg := &Config{Multi: b.Multi}
	fs := flag.NewFlagSet(b.Name, flag.ContinueOnError)
	fs.SetOutput(ourStderr)
	cfg.SetFlags(fs)
	err := fs.Parse(args)
	if err == nil {
		err = cfg.FinishConfig(fs)
		if err != nil {
			alwaysPrintf("%v: %v", b.Name, err)
		}
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		// a bare negative number lands here too: "-5"
		// reads as an undefined flag.
		fmt.Fprintln(out, ErrInvalidArgument.Error())
		fmt.Fprintln(out, timer.Line())
		return ExitInvalid
	}
	if cfg.Version {
		bi, _ := debug.ReadBuildInfo()
		fmt.Fprint(ourStderr, VersionText(b.Name, bi))
		return ExitOK
	}
	SetVerbose(cfg.Verbose)

	index, err := ParseIndex(fs.Args())
	if err != nil {
		vv("%v", err)
		fmt.Fprintln(out, UserMessage(err))
		fmt.Fprintln(out, timer.Line())
		return ExitCode(err)
	}
	vv("%v: index = %v; host: %v", b.Name, index, HostSummary())

	sampler := NewSampler()
	var results []int64
	var workers int
	mode := "single"
	if b.Multi {
		mode = "multi"
		results, workers = b.runMulti(cfg, index, sampler)
	} else {
		workers = 1
		for rep := 0; rep < cfg.Reps; rep++ {
			t0 := time.Now()
			results = []int64{Hash(index, 0)}
			sampler.Add(time.Since(t0))
		}
	}

	switch {
	case cfg.JSON:
		r := NewReport(mode, index, workers, results, sampler)
		r.Fork = cfg.Fork
		r.ElapsedMs = timer.Elapsed().Milliseconds()
		fmt.Fprintf(out, "%s\n", r.JSON())
	case b.Multi:
		for i, v := range results {
			fmt.Fprintf(out, "worker result #%v: %v\n", i+1, v)
		}
	default:
		fmt.Fprintln(out, results[0])
	}

	if cfg.Reps > 1 {
		fmt.Fprintf(ourStderr, "%v %v\n", b.Name, sampler)
	}
	if verbose {
		user, sys := CPUTimes()
		wall := timer.Elapsed()
		vv("cpu user='%v' sys='%v' wall='%v' => parallelism %0.2f", user, sys, wall, float64(user+sys)/float64(wall))
	}
	fmt.Fprintln(out, timer.Line())
	return ExitOK
}

func (b *Bench) runMulti(cfg *Config, index int64, sampler *Sampler) (results []int64, n int) {
	n = cfg.Workers
	if n == 0 {
		n = b.Cores
	}
	if n <= 0 {
		n = LogicalCores()
	}
	runner := b.Runner
	if runner == nil {
		if cfg.Fork {
			runner = &ProcessRunner{}
		} else {
			runner = GoroutineRunner{}
		}
	}
	vv("%v: %v workers, runner %T", b.Name, n, runner)

	tasks := PlanTasks(index, n)
	pool := NewPool(n, runner)
	defer pool.Close()

	var meter *progress.WorkerMeter
	if cfg.Progress {
		meter = progress.NewWorkerMeter(n, os.Stderr)
		pool.OnDone = func(int) { meter.Done() }
	}

	ctx := context.Background()
	for rep := 0; rep < cfg.Reps; rep++ {
		if meter != nil {
			meter.Reset()
		}
		t0 := time.Now()
		var err error
		results, err = pool.Run(ctx, tasks)
		panicOn(err)
		sampler.Add(time.Since(t0))
	}
	return
}
