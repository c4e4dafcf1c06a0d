package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Multi appends every entry to several journals.
type Multi struct {
	journals []types.Journal
}

var _ types.Journal = (*Multi)(nil)

// NewMulti combines journals. Nil journals are skipped.
func NewMulti(journals ...types.Journal) *Multi {
	m := &Multi{}
	for _, j := range journals {
		if j != nil {
			m.journals = append(m.journals, j)
		}
	}

	return m
}

// Len returns the number of combined journals.
func (m *Multi) Len() int {
	return len(m.journals)
}

// Backend joins the member backends, e.g. "file+kv".
func (m *Multi) Backend() string {
	names := make([]string, len(m.journals))
	for i, j := range m.journals {
		names[i] = j.Backend()
	}

	return strings.Join(names, "+")
}

// Append writes to every member and joins their errors.
func (m *Multi) Append(ctx context.Context, entry types.JournalEntry) error {
	var errs []error
	for _, j := range m.journals {
		if err := j.Append(ctx, entry); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", j.Backend(), err))
		}
	}

	return errors.Join(errs...)
}
