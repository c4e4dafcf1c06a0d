package strategy

import (
	"errors"
	"fmt"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

var (
	// ErrNoTasks indicates that Count was called with an empty task list.
	ErrNoTasks = fmt.Errorf("%w: no tasks to execute", types.ErrInvalidArgument)

	// ErrMalformedReply indicates that a worker process wrote a reply that
	// does not match its task.
	ErrMalformedReply = errors.New("malformed worker reply")
)
