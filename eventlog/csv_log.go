package eventlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// CSVLog appends rows to a single CSV file. The header is written only when
// the file does not exist yet.
type CSVLog struct {
	mu     sync.Mutex
	path   string
	header []string
}

func NewCSVLog(path string, header []string) *CSVLog {
	return &CSVLog{path: path, header: header}
}

func (l *CSVLog) Append(row []string) error {
	if len(row) != len(l.header) {
		return fmt.Errorf("row has %d fields, want %d", len(row), len(l.header))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := os.Stat(l.path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", l.path, err)
	}
	if !exists {
		if dir := filepath.Dir(l.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating log dir: %w", err)
			}
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(l.header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	w.Flush()
	return w.Error()
}
