package seqhash

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"
	"time"

	"4d63.com/tz"
)

// -v turns vv on.
var verbose bool = false

// log timestamps are UTC so parent and child lines
// sort together.
var logLoc = mustLoc("UTC")

func mustLoc(name string) *time.Location {
	loc, err := tz.LoadLocation(name)
	panicOn(err)
	return loc
}

const logStamp = "2006-01-02T15:04:05.000000000Z07:00"

var myPid = os.Getpid()

// child processes log with their pid.
var showPid bool

// SetVerbose turns the vv debug log on or off.
func SetVerbose(on bool) {
	verbose = on
}

func vv(format string, a ...interface{}) {
	if verbose {
		tsPrintf(format, a...)
	}
}

func alwaysPrintf(format string, a ...interface{}) {
	tsPrintf(format, a...)
}

var tsPrintfMut sync.Mutex

// tsPrintf writes one log line: caller, [pid], stamp, message.
func tsPrintf(format string, a ...interface{}) {
	where := fileLine(3)
	tsPrintfMut.Lock()
	defer tsPrintfMut.Unlock()
	if showPid {
		printf("%s [pid %v] %s %s\n", where, myPid, ts(), fmt.Sprintf(format, a...))
		return
	}
	printf("%s %s %s\n", where, ts(), fmt.Sprintf(format, a...))
}

func ts() string {
	return time.Now().In(logLoc).Format(logStamp)
}

// stdout carries results, so the log goes to stderr.
var ourStderr io.Writer = os.Stderr

func printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(ourStderr, format, a...)
}

// fileLine is "file.go:line" of the caller depth frames up.
func fileLine(depth int) string {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "?:0"
	}
	return fmt.Sprintf("%s:%d", path.Base(file), line)
}

func panicOn(err error) {
	if err != nil {
		panic(err)
	}
}
