package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"go.uber.org/zap"

	"stockroom/internal/adapter/storage"
	"stockroom/internal/core/domain"
	"stockroom/internal/core/service"
)

// openStore builds the service over the configured files and loads the
// snapshot. A snapshot that does not exist yet is a warning, not an error:
// the store starts empty and the first save creates the file.
func openStore(opts *RootOptions) (*service.InventoryService, error) {
	repo := storage.NewMemoryRepository()
	snapshots := storage.NewFileSnapshotStore(opts.Config.SnapshotPath, opts.Logger)
	journal := storage.NewFileJournal(opts.Config.JournalPath)
	svc := service.NewInventoryService(repo, snapshots, journal, opts.Logger)

	if err := svc.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			opts.Logger.Warn("snapshot not found, starting empty",
				zap.String("path", opts.Config.SnapshotPath))
			return svc, nil
		}
		return nil, err
	}
	return svc, nil
}

// parseQty converts a quantity argument, tagging bad input the way the
// store's own validation does.
func parseQty(arg string) (int, error) {
	qty, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not an integer: %w", arg, domain.ErrValidation)
	}
	return qty, nil
}
