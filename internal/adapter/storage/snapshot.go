package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stockroom/internal/core/domain"
)

// maxSnapshotLine bounds one snapshot record, far above any accepted item
// name plus its quantity column.
const maxSnapshotLine = 1 << 20

// FileSnapshotStore reads and writes the inventory snapshot file: one record
// per line, item_name,quantity. Records split at the last comma, so names
// containing commas round-trip.
type FileSnapshotStore struct {
	path   string
	logger *zap.Logger
}

func NewFileSnapshotStore(path string, logger *zap.Logger) *FileSnapshotStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSnapshotStore{path: path, logger: logger}
}

// Load parses the snapshot file. Lines that do not parse, or that carry a
// negative quantity, are skipped with a warning and never fail the load;
// zero quantities are dropped and a duplicated name keeps its last line.
func (s *FileSnapshotStore) Load() (map[string]int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w: %w", domain.ErrIO, err)
	}
	defer f.Close()

	items := make(map[string]int)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxSnapshotLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		sep := strings.LastIndexByte(line, ',')
		if sep < 0 {
			s.logger.Warn("skipping snapshot line without separator",
				zap.String("path", s.path),
				zap.Int("line", lineNo))
			continue
		}
		name := line[:sep]
		if name == "" {
			s.logger.Warn("skipping snapshot line without item name",
				zap.String("path", s.path),
				zap.Int("line", lineNo))
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(line[sep+1:]))
		if err != nil {
			s.logger.Warn("skipping snapshot line with malformed quantity",
				zap.String("path", s.path),
				zap.Int("line", lineNo))
			continue
		}
		if qty < 0 {
			s.logger.Warn("skipping snapshot line with negative quantity",
				zap.String("path", s.path),
				zap.Int("line", lineNo),
				zap.Int("qty", qty))
			continue
		}
		if qty == 0 {
			continue
		}
		items[name] = qty
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w: %w", s.path, domain.ErrIO, err)
	}

	return items, nil
}

// Save writes the mapping atomically: a temp file in the snapshot directory
// is written completely, then renamed over the previous snapshot. Records
// are sorted by name so snapshots are deterministic.
func (s *FileSnapshotStore) Save(items map[string]int) error {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w: %w", domain.ErrIO, err)
	}
	defer os.Remove(tmp.Name()) // already gone after a successful rename

	w := bufio.NewWriter(tmp)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s,%d\n", name, items[name]); err != nil {
			tmp.Close()
			return fmt.Errorf("write snapshot %s: %w: %w", s.path, domain.ErrIO, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot %s: %w: %w", s.path, domain.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot temp file: %w: %w", domain.ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w: %w", domain.ErrIO, err)
	}

	return nil
}
