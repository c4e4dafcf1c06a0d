package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

const (
	// processWaitDelay bounds how long Wait lingers on a killed child's pipes.
	processWaitDelay = 2 * time.Second

	// maxStderrTail is the number of stderr bytes kept in error messages.
	maxStderrTail = 512
)

// Process runs every task in its own child OS process.
//
// Each child is the configured binary (by default the current executable)
// started with WorkerEnv=1. The task is written to the child's stdin as JSON
// and the partial result is read back from its stdout. A child that exits
// non-zero, writes a malformed reply, or is killed by cancellation fails the
// whole call.
type Process struct {
	opts   *strategyOptions
	binary string
}

var _ types.Strategy = (*Process)(nil)

// NewProcess creates a process strategy.
//
// Parameters:
//   - opts: WithBinary, WithArgs, WithEnv, WithSourceName, WithLogger
//
// Returns:
//   - *Process: Initialized strategy
//   - error: ErrStrategyUnavailable if the executable cannot be resolved,
//     ErrInvalidArgument if the source name is unknown
//
// Example:
//
//	p, err := strategy.NewProcess(strategy.WithEnv("GOMAXPROCS=1"))
//	if err != nil {
//	    return err
//	}
//	partials, err := p.Count(ctx, tasks)
func NewProcess(opts ...Option) (*Process, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	binary := o.binary
	if binary == "" {
		binary, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve executable: %w", types.ErrStrategyUnavailable, err)
		}
	}

	return &Process{opts: o, binary: binary}, nil
}

// Mode returns types.ModeProcess.
func (s *Process) Mode() types.Mode {
	return types.ModeProcess
}

// Binary returns the executable started for each worker.
func (s *Process) Binary() string {
	return s.binary
}

// Count starts one child per task, waits for all of them, and returns their partials.
//
// Inside a worker child it fails with ErrStrategyUnavailable, so a host program
// that skips RunWorkerMain cannot spawn children recursively.
func (s *Process) Count(ctx context.Context, tasks []types.Task) ([]types.PartialResult, error) {
	if IsWorkerProcess() {
		return nil, fmt.Errorf("%w: process strategy invoked inside a worker child", types.ErrStrategyUnavailable)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	results := make(chan types.PartialResult, len(tasks))
	g, gctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		g.Go(func() error {
			p, err := s.spawn(gctx, task)
			if err != nil {
				s.opts.logger.Debug("worker process failed", "worker_id", task.WorkerID, "error", err)
				return types.NewWorkerError(s.Mode(), task.WorkerID, err)
			}
			results <- p

			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	partials := make([]types.PartialResult, 0, len(tasks))
	for p := range results {
		partials = append(partials, p)
	}

	return partials, nil
}

func (s *Process) spawn(ctx context.Context, task types.Task) (types.PartialResult, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return types.PartialResult{}, fmt.Errorf("encode task: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.binary, s.opts.args...)
	cmd.Env = append(os.Environ(), s.opts.env...)
	cmd.Env = append(cmd.Env, WorkerEnv+"=1", WorkerSourceEnv+"="+s.opts.sourceName)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = processWaitDelay

	s.opts.logger.Debug("starting worker process", "worker_id", task.WorkerID, "samples", task.Samples)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return types.PartialResult{}, fmt.Errorf("worker process aborted: %w", ctxErr)
		}

		return types.PartialResult{}, fmt.Errorf("worker process: %w%s", err, stderrTail(&stderr))
	}

	var reply workerReply
	if err := json.Unmarshal(stdout.Bytes(), &reply); err != nil {
		return types.PartialResult{}, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}
	if reply.Error != "" {
		return types.PartialResult{}, errors.New(reply.Error)
	}
	if reply.WorkerID != task.WorkerID || reply.Samples != task.Samples || reply.Inside > reply.Samples {
		return types.PartialResult{}, fmt.Errorf("%w: got worker %d with %d/%d inside, want worker %d with %d samples",
			ErrMalformedReply, reply.WorkerID, reply.Inside, reply.Samples, task.WorkerID, task.Samples)
	}

	return reply.PartialResult, nil
}

func stderrTail(stderr *bytes.Buffer) string {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return ""
	}
	if len(msg) > maxStderrTail {
		msg = "..." + msg[len(msg)-maxStderrTail:]
	}

	return ": " + msg
}
