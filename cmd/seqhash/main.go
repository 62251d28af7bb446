package main

import (
	"os"

	"github.com/glycerine/seqhash"
)

// seqhash N: hash the sequence N, N-1, ..., 1 on one
// goroutine and print the result and elapsed time.
func main() {
	seqhash.ExitIfVersionRequested(os.Stderr, "seqhash", os.Args[1:])
	os.Exit(seqhash.NewSingleBench().Main(os.Args[1:]))
}
