package runlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File appends newline-delimited JSON records to a single log file. Appends
// are mutex-serialized and each record goes out in one Write call, so lines
// never interleave even under concurrent requests.
type File struct {
	mu sync.Mutex
	f  *os.File
}

// NewFile opens (or creates) the log file in append mode, creating parent
// directories as needed.
func NewFile(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &File{f: f}, nil
}

func (l *File) Log(_ context.Context, rec Record) error {
	if rec.Event == "" {
		rec.Event = EventAnalyze
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.Write(line); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

func (l *File) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
