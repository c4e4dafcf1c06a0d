package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// BackendFile is the backend name reported by File.
const BackendFile = "file"

// File appends entries as JSON lines to a file.
//
// The file and its parent directory are created on first append.
type File struct {
	path string
	mu   sync.Mutex
}

var _ types.Journal = (*File)(nil)

// NewFile creates a file journal at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Backend returns "file".
func (f *File) Backend() string {
	return BackendFile
}

// Path returns the journal file path.
func (f *File) Path() string {
	return f.path
}

// Append writes entry as one JSON line.
func (f *File) Append(_ context.Context, entry types.JournalEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, err)
	}
	line = append(line, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, err)
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, err)
	}
	if _, err := file.Write(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", types.ErrJournalWrite, err)
	}

	return nil
}

// Entries reads every entry in file order.
//
// A journal that was never written yields no entries and no error.
func (f *File) Entries(_ context.Context) ([]types.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []types.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrJournalRead, err)
	}
	defer file.Close()

	entries := []types.JournalEntry{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e types.JournalEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", types.ErrJournalRead, lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrJournalRead, err)
	}

	return entries, nil
}
