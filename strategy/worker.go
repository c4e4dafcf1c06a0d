package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

const (
	// WorkerEnv marks a process as a worker child. The process strategy sets
	// it to "1" for every child it starts.
	WorkerEnv = "MONTEPI_WORKER"

	// WorkerSourceEnv names the point source the child builds from its task seed.
	WorkerSourceEnv = "MONTEPI_WORKER_SOURCE"
)

// workerReply is the JSON document a worker child writes to stdout.
type workerReply struct {
	types.PartialResult
	Error string `json:"error,omitempty"`
}

// IsWorkerProcess reports whether the current process was started as a worker child.
func IsWorkerProcess() bool {
	return os.Getenv(WorkerEnv) == "1"
}

// ServeWorker reads one task from r, samples it, and writes the reply to w.
//
// A failed task still produces a reply carrying the error text, so the parent
// can report the cause.
//
// Parameters:
//   - ctx: Cancels sampling
//   - r: Source of the JSON-encoded types.Task
//   - w: Destination of the JSON reply
//   - factory: Point source factory; nil selects the source named by WorkerSourceEnv
//
// Returns:
//   - error: Decode, sampling or encode failure
func ServeWorker(ctx context.Context, r io.Reader, w io.Writer, factory types.SourceFactory) error {
	if factory == nil {
		f, err := source.ByName(os.Getenv(WorkerSourceEnv))
		if err != nil {
			return err
		}
		factory = f
	}

	var task types.Task
	if err := json.NewDecoder(r).Decode(&task); err != nil {
		return fmt.Errorf("decode task: %w", err)
	}

	p, err := runTask(ctx, factory(task), task)
	reply := workerReply{PartialResult: p}
	if err != nil {
		reply.WorkerID = task.WorkerID
		reply.Error = err.Error()
	}

	if encErr := json.NewEncoder(w).Encode(reply); encErr != nil {
		return errors.Join(err, fmt.Errorf("encode reply: %w", encErr))
	}

	return err
}

// RunWorkerMain serves a single task over stdin/stdout and exits, when the
// process is a worker child. Otherwise it returns immediately.
func RunWorkerMain() {
	if !IsWorkerProcess() {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := ServeWorker(ctx, os.Stdin, os.Stdout, nil)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}
