package loginlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

const header = "// Every successful login to the appointment manager is recorded below. Timestamps are UTC (ISO-8601).\n\n"

const timestampLayout = "2006-01-02T15:04:05Z"

// Writer appends one line per successful login to a text file, creating it
// with a header line first.
type Writer struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

func New(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Record(username string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	fresh := false
	if _, err := os.Stat(w.path); errors.Is(err, fs.ErrNotExist) {
		fresh = true
	} else if err != nil {
		return fmt.Errorf("stat login log: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open login log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s | User named: '%s' logged into the appointment manager.\n",
		w.now().UTC().Format(timestampLayout), username)

	if fresh {
		line = header + line
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write login log: %w", err)
	}
	return nil
}
