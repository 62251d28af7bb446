package seqhash

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/glycerine/idem"
)

var ErrPoolClosed = errors.New("seqhash: pool closed")

// Runner computes one Task. Implementations must be
// safe for concurrent use by the pool's workers.
type Runner interface {
	RunTask(ctx context.Context, t Task) (int64, error)
}

// GoroutineRunner computes tasks in-process.
type GoroutineRunner struct{}

func (GoroutineRunner) RunTask(ctx context.Context, t Task) (int64, error) {
	return Hash(t.Value, t.Seed), nil
}

// Pool is a fixed-size set of workers draining a job
// channel. Tasks share nothing, so results land in a
// pre-sized slice at the task's own index and come
// back in submission order whatever the finish order.
type Pool struct {
	nWorkers int
	runner   Runner
	halt     *idem.Halter

	// OnDone, if set, is called from the worker
	// goroutine after task i completes.
	OnDone func(i int)
}

// NewPool returns a pool of nWorkers workers, at least one.
func NewPool(nWorkers int, runner Runner) *Pool {
	if nWorkers < 1 {
		nWorkers = 1
	}
	return &Pool{
		nWorkers: nWorkers,
		runner:   runner,
		halt:     idem.NewHalter(),
	}
}

func (p *Pool) Workers() int {
	return p.nWorkers
}

// Close asks the workers to stop taking jobs. Any Run
// in progress returns ErrPoolClosed; later Runs fail
// immediately.
func (p *Pool) Close() {
	p.halt.ReqStop.Close()
}

// Run submits every task and blocks until all are done,
// the pool is closed, ctx is cancelled, or a task fails.
// The first task error is returned.
func (p *Pool) Run(ctx context.Context, tasks []Task) (results []int64, err error) {
	if p.halt.ReqStop.IsClosed() {
		return nil, ErrPoolClosed
	}
	results = make([]int64, len(tasks))
	if len(tasks) == 0 {
		return
	}

	// every job is queued up front; workers exit when it drains.
	work := make(chan int, len(tasks))
	for i := range tasks {
		work <- i
	}
	close(work)

	nW := p.nWorkers
	if len(tasks) < nW {
		nW = len(tasks) // get smaller, but not larger.
	}

	abort := idem.NewIdemCloseChan()
	var mut sync.Mutex
	var firstErr error
	var ndone int

	var wg sync.WaitGroup
	wg.Add(nW)
	for worker := 0; worker < nW; worker++ {
		go func(worker int) {
			defer wg.Done()
			for {
				select {
				case <-p.halt.ReqStop.Chan:
					return
				case <-ctx.Done():
					return
				case <-abort.Chan:
					return
				case i, ok := <-work:
					if !ok {
						return
					}
					r, err := p.runner.RunTask(ctx, tasks[i])
					if err != nil {
						mut.Lock()
						if firstErr == nil {
							firstErr = fmt.Errorf("worker %v, task %v (%+v): %w", worker, i, tasks[i], err)
						}
						mut.Unlock()
						abort.Close()
						return
					}
					results[i] = r
					mut.Lock()
					ndone++
					mut.Unlock()
					vv("worker %v finished task %v: %v", worker, i, r)
					if p.OnDone != nil {
						p.OnDone(i)
					}
				}
			}
		}(worker)
	}
	wg.Wait()

	switch {
	case firstErr != nil:
		return nil, firstErr
	case ndone == len(tasks):
		return results, nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}
	return nil, ErrPoolClosed
}
