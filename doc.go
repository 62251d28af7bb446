/*
Package seqhash is a small CPU benchmark: a rolling
hash over the descending sequence N, N-1, ..., 1,
timed by wall clock.

Two commands sit on top of it. cmd/seqhash runs the
loop once. cmd/seqhash_mp runs one copy per logical
processor, worker i starting from seed i*4, and prints
the results in worker order:

	$ seqhash_mp 120000000
	worker result #1: ...
	worker result #2: ...
	time: 1710ms

Workers are goroutines by default. With -fork each
worker is a child process re-executing the same
binary; see ChildVerb.

Exit status is 0 on success, 1 when the sequence
length is missing and 2 when it is not a positive
integer.
*/
package seqhash
