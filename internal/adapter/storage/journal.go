package storage

import (
	"fmt"
	"os"
	"strings"
	"time"

	"stockroom/internal/core/domain"
)

// FileJournal appends operation records to a text log file, one line per
// operation: timestamp | operation | item | qty | result. The file is
// opened per append and closed on every path.
type FileJournal struct {
	path string
}

func NewFileJournal(path string) *FileJournal {
	return &FileJournal{path: path}
}

func (j *FileJournal) Append(op domain.Operation) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w: %w", domain.ErrIO, err)
	}

	line := fmt.Sprintf("%s | %s | %s | %d | %s\n",
		op.Time.UTC().Format(time.RFC3339),
		op.Kind,
		escapeField(op.Item),
		op.Qty,
		op.Result,
	)
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("append journal %s: %w: %w", j.path, domain.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close journal %s: %w: %w", j.path, domain.ErrIO, err)
	}

	return nil
}

// escapeField keeps item text on a single journal line without a bare field
// separator. Rejected inputs are journaled too, so the raw text may carry
// line breaks or pipes.
func escapeField(s string) string {
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "|", `\|`)
	return s
}
