package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"stockroom/internal/core/domain"
	"stockroom/internal/port"
)

// noItem marks journal lines for operations on the whole inventory.
const noItem = "-"

// InventoryService owns every inventory rule: input validation, stock
// arithmetic, journaling, and snapshot persistence. It is constructed once
// and handed to whatever surface drives it.
type InventoryService struct {
	repo      port.StockRepository
	snapshots port.SnapshotStore
	journal   port.Journal
	logger    *zap.Logger
}

// NewInventoryService wires the service. A nil journal is replaced by a
// no-op recorder and a nil logger by zap.NewNop, so both are optional.
func NewInventoryService(repo port.StockRepository, snapshots port.SnapshotStore, journal port.Journal, logger *zap.Logger) *InventoryService {
	if journal == nil {
		journal = noopJournal{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		repo:      repo,
		snapshots: snapshots,
		journal:   journal,
		logger:    logger,
	}
}

// Add increases stock for an item, creating the entry when absent. The item
// name must be valid and qty positive; violations fail with ErrValidation
// and leave the inventory unchanged. An addition that would overflow the
// stored quantity is rejected the same way.
func (s *InventoryService) Add(name string, qty int) error {
	if err := validateInput(name, qty); err != nil {
		return s.fail(domain.OpAdd, name, qty, err)
	}

	current, _ := s.repo.Get(name)
	if qty > math.MaxInt-current {
		err := fmt.Errorf("add %d of %q with %d on hand would overflow: %w",
			qty, name, current, domain.ErrValidation)
		return s.fail(domain.OpAdd, name, qty, err)
	}
	s.repo.Put(name, current+qty)

	s.logger.Info("stock added",
		zap.String("item", name),
		zap.Int("qty", qty),
		zap.Int("on_hand", current+qty))
	return s.record(domain.OpAdd, name, qty)
}

// Remove decreases stock for an item, deleting the entry when it lands on
// exactly zero. Fails with ErrNotFound for an unknown item and with
// ErrInsufficientStock when qty exceeds the current quantity; every failure
// leaves the inventory unchanged.
func (s *InventoryService) Remove(name string, qty int) error {
	if err := validateInput(name, qty); err != nil {
		return s.fail(domain.OpRemove, name, qty, err)
	}

	current, ok := s.repo.Get(name)
	if !ok {
		err := fmt.Errorf("item %q: %w", name, domain.ErrNotFound)
		return s.fail(domain.OpRemove, name, qty, err)
	}
	if qty > current {
		err := fmt.Errorf("remove %d of %q with only %d on hand: %w",
			qty, name, current, domain.ErrInsufficientStock)
		return s.fail(domain.OpRemove, name, qty, err)
	}

	remaining := current - qty
	if remaining == 0 {
		s.repo.Delete(name)
	} else {
		s.repo.Put(name, remaining)
	}

	s.logger.Info("stock removed",
		zap.String("item", name),
		zap.Int("qty", qty),
		zap.Int("on_hand", remaining))
	return s.record(domain.OpRemove, name, qty)
}

// Query returns the on-hand quantity, 0 when the item is unknown. It has no
// failure modes; a journal problem here is logged, never raised.
func (s *InventoryService) Query(name string) int {
	qty, _ := s.repo.Get(name)

	if err := s.journal.Append(s.op(domain.OpQuery, name, qty, nil)); err != nil {
		s.logger.Error("journal append failed", zap.Error(err))
	}
	s.logger.Debug("stock queried",
		zap.String("item", name),
		zap.Int("on_hand", qty))
	return qty
}

// Load replaces the in-memory inventory with the snapshot contents.
func (s *InventoryService) Load() error {
	items, err := s.snapshots.Load()
	if err != nil {
		return s.fail(domain.OpLoad, noItem, 0, err)
	}

	s.repo.Replace(items)

	s.logger.Info("inventory loaded", zap.Int("items", len(items)))
	return s.record(domain.OpLoad, noItem, len(items))
}

// Save writes the current inventory to the snapshot file.
func (s *InventoryService) Save() error {
	items := s.repo.Items()
	if err := s.snapshots.Save(items); err != nil {
		return s.fail(domain.OpSave, noItem, len(items), err)
	}

	s.logger.Info("inventory saved", zap.Int("items", len(items)))
	return s.record(domain.OpSave, noItem, len(items))
}

// LowStock lists items with quantity strictly below threshold, sorted by
// name. Derived reads are not journaled.
func (s *InventoryService) LowStock(threshold int) ([]domain.Item, error) {
	if threshold < 0 {
		err := fmt.Errorf("threshold must not be negative, got %d: %w",
			threshold, domain.ErrValidation)
		s.logger.Warn("low stock check rejected", zap.Error(err))
		return nil, err
	}

	var low []domain.Item
	for name, qty := range s.repo.Items() {
		if qty < threshold {
			low = append(low, domain.Item{Name: name, Quantity: qty})
		}
	}
	sortItems(low)
	return low, nil
}

// Report returns every item sorted by name.
func (s *InventoryService) Report() []domain.Item {
	items := s.repo.Items()

	report := make([]domain.Item, 0, len(items))
	for name, qty := range items {
		report = append(report, domain.Item{Name: name, Quantity: qty})
	}
	sortItems(report)
	return report
}

// validateInput applies the shared rules for mutating operations.
func validateInput(name string, qty int) error {
	if err := domain.ValidateItemName(name); err != nil {
		return err
	}
	return domain.ValidateQuantity(qty)
}

// fail journals and logs a failed operation, returning the original error.
// A journal problem while recording a failure is logged rather than raised,
// so the first error is never masked.
func (s *InventoryService) fail(kind domain.OpKind, item string, qty int, err error) error {
	if jerr := s.journal.Append(s.op(kind, item, qty, err)); jerr != nil {
		s.logger.Error("journal append failed", zap.Error(jerr))
	}
	s.logger.Warn("operation failed",
		zap.String("op", string(kind)),
		zap.String("item", item),
		zap.Int("qty", qty),
		zap.Error(err))
	return err
}

// record journals a successful operation. Recording is part of the
// operation: an append failure surfaces as the journal's ErrIO.
func (s *InventoryService) record(kind domain.OpKind, item string, qty int) error {
	if err := s.journal.Append(s.op(kind, item, qty, nil)); err != nil {
		s.logger.Error("journal append failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *InventoryService) op(kind domain.OpKind, item string, qty int, err error) domain.Operation {
	return domain.Operation{
		Time:   time.Now().UTC(),
		Kind:   kind,
		Item:   item,
		Qty:    qty,
		Result: domain.Outcome(err),
	}
}

func sortItems(items []domain.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

// noopJournal satisfies port.Journal when no journal is configured.
type noopJournal struct{}

func (noopJournal) Append(domain.Operation) error { return nil }
