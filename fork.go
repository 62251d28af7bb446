package seqhash

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	gjson "github.com/goccy/go-json"
)

// ChildVerb, as the first argument, turns the
// multi-worker binary into a single-task worker:
//
//	SEQHASH_CHILD=1 <exe> fork <value> <seed>
//
// The child prints one JSON line, {"hash":<result>}, and exits 0.
// Without ChildEnv set the line is an ordinary command line,
// so a user typing "fork 2 0" gets the usual argument handling.
const ChildVerb = "fork"

// ChildEnv is set to "1" by ProcessRunner in every child.
const ChildEnv = "SEQHASH_CHILD"

type childReply struct {
	Hash int64 `json:"hash"`
}

// IsChildInvocation reports whether args (os.Args
// style, program name first) ask for child mode.
func IsChildInvocation(args []string) bool {
	return len(args) > 0 && isChild(args[1:])
}

// isChild wants ChildEnv=1 and exactly "fork <value> <seed>".
func isChild(args []string) bool {
	return os.Getenv(ChildEnv) == "1" && len(args) == 3 && args[0] == ChildVerb
}

// RunChild handles the child side of the fork
// protocol. args starts at ChildVerb.
func RunChild(w io.Writer, args []string) error {
	if len(args) != 3 || args[0] != ChildVerb {
		return fmt.Errorf("seqhash child: want '%v <value> <seed>', got %q", ChildVerb, args)
	}
	value, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("seqhash child: bad value: %w", err)
	}
	seed, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("seqhash child: bad seed: %w", err)
	}
	by, err := gjson.Marshal(&childReply{Hash: Hash(value, seed)})
	if err != nil {
		return err
	}
	_, err = w.Write(append(by, '\n'))
	return err
}

// ProcessRunner computes each task in a fresh OS
// process, re-executing Exe in child mode.
type ProcessRunner struct {
	// Exe defaults to os.Executable().
	Exe string

	// PreArgs go before ChildVerb on the child's
	// command line. Tests use them to route the
	// test binary to its helper.
	PreArgs []string

	// Env is appended to the parent environment,
	// after ChildEnv=1.
	Env []string
}

func (r *ProcessRunner) RunTask(ctx context.Context, t Task) (int64, error) {
	exe := r.Exe
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return 0, err
		}
	}
	args := append([]string{}, r.PreArgs...)
	args = append(args, ChildVerb,
		strconv.FormatInt(t.Value, 10),
		strconv.FormatInt(t.Seed, 10))

	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), ChildEnv+"=1")
	cmd.Env = append(cmd.Env, r.Env...)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("child %v %q: %w", exe, args, err)
	}
	return parseChildReply(out)
}

// parseChildReply decodes the last non-empty line of
// the child's stdout.
func parseChildReply(out []byte) (int64, error) {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	last := lines[len(lines)-1]
	if len(last) == 0 {
		return 0, fmt.Errorf("child wrote no reply")
	}
	var reply struct {
		Hash *int64 `json:"hash"`
	}
	if err := gjson.Unmarshal(last, &reply); err != nil {
		return 0, fmt.Errorf("bad child reply '%s': %w", last, err)
	}
	if reply.Hash == nil {
		return 0, fmt.Errorf("child reply '%s' has no hash", last)
	}
	return *reply.Hash, nil
}
