package checklog

import (
	"fmt"
	"os"
	"sync"
)

// Recorder appends one record per performed check. Implementations are
// best-effort collaborators: the handler attempts the append, logs a
// failure, and moves on.
type Recorder interface {
	Record(word string, isPalindrome bool) error
}

// Discard is a Recorder that drops every record. It stands in for the
// file-backed recorder when the log file cannot be opened.
var Discard Recorder = discardRecorder{}

type discardRecorder struct{}

func (discardRecorder) Record(string, bool) error { return nil }

// FileRecorder appends check records to a plain UTF-8 text file, one
// line per record. The file is write-only and never read back.
type FileRecorder struct {
	mutex sync.Mutex
	file  *os.File
}

// NewFileRecorder opens (or creates) the log file at path in append mode.
func NewFileRecorder(path string) (*FileRecorder, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open check log: %w", err)
	}

	return &FileRecorder{file: f}, nil
}

// Record appends one line for the given word and verdict. The line is
// written in a single call under the mutex so concurrent records never
// interleave within a line.
func (r *FileRecorder) Record(word string, isPalindrome bool) error {
	verdict := "NO es"
	if isPalindrome {
		verdict = "es"
	}

	line := fmt.Sprintf("El usuario ha comprobado la palabra \"%s\" y %s un palíndromo.\n", word, verdict)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, err := r.file.WriteString(line); err != nil {
		return fmt.Errorf("append check log: %w", err)
	}

	return nil
}

// Close closes the underlying file.
func (r *FileRecorder) Close() error {
	return r.file.Close()
}
