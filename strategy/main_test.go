package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Environment switches understood by the test binary when it runs as a worker child.
const (
	testFailWorkerEnv = "MONTEPI_TEST_FAIL_WORKER"
	testReplyEnv      = "MONTEPI_TEST_REPLY"
)

func TestMain(m *testing.M) {
	if IsWorkerProcess() {
		os.Exit(testWorkerMain())
	}
	os.Exit(m.Run())
}

// testWorkerMain is the worker child used by the process strategy tests.
func testWorkerMain() int {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var task types.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if id := os.Getenv(testFailWorkerEnv); id != "" && id == strconv.Itoa(task.WorkerID) {
		fmt.Fprintln(os.Stderr, "injected failure")
		return 3
	}

	switch os.Getenv(testReplyEnv) {
	case "garbage":
		fmt.Print("not json")
		return 0
	case "wrong-worker":
		_ = json.NewEncoder(os.Stdout).Encode(types.PartialResult{WorkerID: task.WorkerID + 100, Samples: task.Samples})
		return 0
	case "hang":
		time.Sleep(time.Minute)
		return 0
	}

	if err := ServeWorker(context.Background(), bytes.NewReader(raw), os.Stdout, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
