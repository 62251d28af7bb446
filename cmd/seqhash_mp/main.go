package main

import (
	"os"

	"github.com/glycerine/seqhash"
)

// seqhash_mp N: run one independent hash of N per
// logical processor, worker i seeded with i*4, and
// print each result in worker order.
//
// With -fork every worker is a child process: this
// same binary, invoked as "seqhash_mp fork <N> <seed>"
// with SEQHASH_CHILD=1 in its environment.
func main() {
	if !seqhash.IsChildInvocation(os.Args) {
		seqhash.ExitIfVersionRequested(os.Stderr, "seqhash_mp", os.Args[1:])
	}
	os.Exit(seqhash.NewMultiBench().Main(os.Args[1:]))
}
