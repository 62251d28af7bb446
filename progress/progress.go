package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apoorvam/goterminal"
	"golang.org/x/term"
)

/*
The meter redraws a single line in place with goterminal,
and only when the target is a terminal. Piped or
redirected output sees nothing, so result lines on
stdout and logs on stderr stay clean.
*/

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// WorkerMeter counts finished workers out of total.
// Done may be called from any goroutine.
type WorkerMeter struct {
	mut    sync.Mutex
	isTerm bool
	gw     *goterminal.Writer
	total  int
	done   int
	start  time.Time
}

// NewWorkerMeter draws on f, normally os.Stderr.
func NewWorkerMeter(total int, f *os.File) *WorkerMeter {
	return &WorkerMeter{
		isTerm: isTerminal(f),
		gw:     goterminal.New(f),
		total:  total,
		start:  time.Now(),
	}
}

// Reset starts a new round, as for the next repetition.
func (m *WorkerMeter) Reset() {
	m.mut.Lock()
	m.done = 0
	m.start = time.Now()
	m.mut.Unlock()
}

func (m *WorkerMeter) Done() {
	m.mut.Lock()
	defer m.mut.Unlock()
	m.done++
	if !m.isTerm {
		return
	}
	m.gw.Clear()
	fmt.Fprintf(m.gw, "%s  %v\n", Line(m.done, m.total), time.Since(m.start).Truncate(time.Millisecond))
	m.gw.Print()
}

const width = 20

// Line renders "workers done: k/n [====>    ]".
func Line(done, total int) string {
	var frac float64
	if total > 0 {
		frac = float64(done) / float64(total)
	}
	if frac > 1 {
		frac = 1
	}
	completed := int(frac * float64(width))

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		if i < completed {
			bar.WriteRune('=')
		} else if i == completed {
			bar.WriteRune('>')
		} else {
			bar.WriteRune(' ')
		}
	}
	bar.WriteString("]")
	return fmt.Sprintf("workers done: %v/%v %s", done, total, bar.String())
}
