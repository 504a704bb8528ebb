package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ScoreSink receives finished mazes.
type ScoreSink interface {
	RecordWin(gameID string, steps int) error
}

var (
	_ ScoreSink = (*Store)(nil)
	_ ScoreSink = (*TextLog)(nil)
	_ ScoreSink = MultiSink(nil)
)

// TextLog appends one human-readable line per finished maze to a file.
type TextLog struct {
	mu   sync.Mutex
	path string
}

// OpenTextLog prepares a text score log at path, creating parent
// directories. The file itself is created on the first write.
func OpenTextLog(path string) (*TextLog, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &TextLog{path: path}, nil
}

// Path returns the file the log appends to.
func (l *TextLog) Path() string { return l.path }

// RecordWin appends "Finished maze in N steps".
func (l *TextLog) RecordWin(_ string, steps int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open score log: %w", err)
	}
	if _, err := fmt.Fprintf(f, "Finished maze in %d steps\n", steps); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot write score log: %w", err)
	}
	return f.Close()
}

// MultiSink fans a win out to every sink. All sinks are tried; their
// errors are joined.
type MultiSink []ScoreSink

// RecordWin implements ScoreSink.
func (m MultiSink) RecordWin(gameID string, steps int) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.RecordWin(gameID, steps); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
