package service

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stockroom/internal/core/domain"
)

// Fake StockRepository
type fakeRepo struct {
	items map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]int)}
}

func (r *fakeRepo) Get(name string) (int, bool) {
	qty, ok := r.items[name]
	return qty, ok
}

func (r *fakeRepo) Put(name string, qty int) { r.items[name] = qty }

func (r *fakeRepo) Delete(name string) { delete(r.items, name) }

func (r *fakeRepo) Items() map[string]int {
	items := make(map[string]int, len(r.items))
	for name, qty := range r.items {
		items[name] = qty
	}
	return items
}

func (r *fakeRepo) Replace(items map[string]int) { r.items = items }

// Fake Journal capturing appended records
type recordingJournal struct {
	ops  []domain.Operation
	fail error
}

func (j *recordingJournal) Append(op domain.Operation) error {
	if j.fail != nil {
		return j.fail
	}
	j.ops = append(j.ops, op)
	return nil
}

// Fake SnapshotStore
type fakeSnapshots struct {
	items   map[string]int
	loadErr error
	saveErr error
	saved   map[string]int
}

func (s *fakeSnapshots) Load() (map[string]int, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	items := make(map[string]int, len(s.items))
	for name, qty := range s.items {
		items[name] = qty
	}
	return items, nil
}

func (s *fakeSnapshots) Save(items map[string]int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = items
	return nil
}

func newTestService() (*InventoryService, *fakeRepo, *fakeSnapshots, *recordingJournal) {
	repo := newFakeRepo()
	snapshots := &fakeSnapshots{}
	journal := &recordingJournal{}
	svc := NewInventoryService(repo, snapshots, journal, zap.NewNop())
	return svc, repo, snapshots, journal
}

func TestAdd_ThenQuery(t *testing.T) {
	svc, _, _, _ := newTestService()

	require.NoError(t, svc.Add("bolt", 10))
	require.Equal(t, 10, svc.Query("bolt"))

	require.NoError(t, svc.Add("bolt", 5))
	require.Equal(t, 15, svc.Query("bolt"))
}

func TestAdd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		item string
		qty  int
	}{
		{"empty item", "", 5},
		{"item with newline", "bolt\nnut", 5},
		{"item with carriage return", "bolt\rnut", 5},
		{"zero qty", "bolt", 0},
		{"negative qty", "bolt", -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, journal := newTestService()

			err := svc.Add(tt.item, tt.qty)
			require.ErrorIs(t, err, domain.ErrValidation)
			require.Empty(t, repo.items)

			require.Len(t, journal.ops, 1)
			require.Equal(t, domain.OpAdd, journal.ops[0].Kind)
			require.Equal(t, "validation_error", journal.ops[0].Result)
		})
	}
}

func TestAdd_RejectsOverflowingQuantity(t *testing.T) {
	svc, repo, _, journal := newTestService()

	require.NoError(t, svc.Add("bolt", math.MaxInt))

	err := svc.Add("bolt", 1)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Equal(t, math.MaxInt, repo.items["bolt"])
	require.Equal(t, "validation_error", journal.ops[len(journal.ops)-1].Result)
}

func TestRemove_BoltSequence(t *testing.T) {
	svc, _, _, _ := newTestService()

	require.NoError(t, svc.Add("bolt", 10))
	require.Equal(t, 10, svc.Query("bolt"))

	require.NoError(t, svc.Remove("bolt", 4))
	require.Equal(t, 6, svc.Query("bolt"))

	err := svc.Remove("bolt", 100)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 6, svc.Query("bolt"))
}

func TestRemove_DeletesEntryAtZero(t *testing.T) {
	svc, repo, _, _ := newTestService()

	require.NoError(t, svc.Add("washer", 7))
	require.NoError(t, svc.Remove("washer", 7))

	_, ok := repo.Get("washer")
	require.False(t, ok)
	require.Equal(t, 0, svc.Query("washer"))
}

func TestRemove_UnknownItem(t *testing.T) {
	svc, _, _, journal := newTestService()

	err := svc.Remove("ghost", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.Len(t, journal.ops, 1)
	require.Equal(t, domain.OpRemove, journal.ops[0].Kind)
	require.Equal(t, "not_found", journal.ops[0].Result)
}

func TestRemove_InsufficientLeavesStockUntouched(t *testing.T) {
	svc, repo, _, journal := newTestService()
	repo.items["nut"] = 3

	err := svc.Remove("nut", 4)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 3, repo.items["nut"])

	last := journal.ops[len(journal.ops)-1]
	require.Equal(t, "insufficient_stock", last.Result)
	require.Equal(t, 4, last.Qty)
}

func TestRemove_RejectsNonPositiveQty(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.items["bolt"] = 5

	require.ErrorIs(t, svc.Remove("bolt", 0), domain.ErrValidation)
	require.ErrorIs(t, svc.Remove("bolt", -2), domain.ErrValidation)
	require.Equal(t, 5, repo.items["bolt"])
}

func TestQuery_AbsentItemIsZero(t *testing.T) {
	svc, _, _, journal := newTestService()

	require.Equal(t, 0, svc.Query("never-added"))

	require.Len(t, journal.ops, 1)
	require.Equal(t, domain.OpQuery, journal.ops[0].Kind)
	require.Equal(t, 0, journal.ops[0].Qty)
	require.Equal(t, "ok", journal.ops[0].Result)
}

func TestQuery_JournalFailureIsNotRaised(t *testing.T) {
	svc, repo, _, journal := newTestService()
	repo.items["bolt"] = 6
	journal.fail = fmt.Errorf("append journal: %w", domain.ErrIO)

	require.Equal(t, 6, svc.Query("bolt"))
}

func TestLoad_ReplacesInventory(t *testing.T) {
	svc, repo, snapshots, journal := newTestService()
	repo.items["stale"] = 99
	snapshots.items = map[string]int{"apple": 3, "banana": 8}

	require.NoError(t, svc.Load())
	require.Equal(t, map[string]int{"apple": 3, "banana": 8}, repo.items)

	last := journal.ops[len(journal.ops)-1]
	require.Equal(t, domain.OpLoad, last.Kind)
	require.Equal(t, "-", last.Item)
	require.Equal(t, 2, last.Qty)
	require.Equal(t, "ok", last.Result)
}

func TestLoad_FailureLeavesInventoryAndSurfaces(t *testing.T) {
	svc, repo, snapshots, journal := newTestService()
	repo.items["bolt"] = 6
	snapshots.loadErr = fmt.Errorf("open snapshot: %w", domain.ErrIO)

	err := svc.Load()
	require.ErrorIs(t, err, domain.ErrIO)
	require.Equal(t, map[string]int{"bolt": 6}, repo.items)

	last := journal.ops[len(journal.ops)-1]
	require.Equal(t, domain.OpLoad, last.Kind)
	require.Equal(t, "io_error", last.Result)
}

func TestSave_WritesCurrentItems(t *testing.T) {
	svc, repo, snapshots, journal := newTestService()
	repo.items["bolt"] = 6
	repo.items["nut"] = 2

	require.NoError(t, svc.Save())
	require.Equal(t, map[string]int{"bolt": 6, "nut": 2}, snapshots.saved)

	last := journal.ops[len(journal.ops)-1]
	require.Equal(t, domain.OpSave, last.Kind)
	require.Equal(t, "-", last.Item)
	require.Equal(t, 2, last.Qty)
}

func TestSave_FailureSurfaces(t *testing.T) {
	svc, _, snapshots, journal := newTestService()
	snapshots.saveErr = fmt.Errorf("replace snapshot: %w", domain.ErrIO)

	require.ErrorIs(t, svc.Save(), domain.ErrIO)
	require.Equal(t, "io_error", journal.ops[len(journal.ops)-1].Result)
}

func TestAdd_JournalFailureSurfacesButApplies(t *testing.T) {
	svc, repo, _, journal := newTestService()
	journal.fail = fmt.Errorf("open journal: %w", domain.ErrIO)

	err := svc.Add("bolt", 10)
	require.ErrorIs(t, err, domain.ErrIO)
	// The mutation itself is applied; only the recording failed.
	require.Equal(t, 10, repo.items["bolt"])
}

func TestRemove_JournalFailureDoesNotMaskFirstError(t *testing.T) {
	svc, _, _, journal := newTestService()
	journal.fail = fmt.Errorf("open journal: %w", domain.ErrIO)

	err := svc.Remove("ghost", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NotErrorIs(t, err, domain.ErrIO)
}

func TestNewInventoryService_NilJournalAndLogger(t *testing.T) {
	repo := newFakeRepo()
	svc := NewInventoryService(repo, &fakeSnapshots{}, nil, nil)

	require.NoError(t, svc.Add("bolt", 1))
	require.Equal(t, 1, svc.Query("bolt"))
}

func TestLowStock(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.items["apple"] = 2
	repo.items["banana"] = 10
	repo.items["cherry"] = 4

	low, err := svc.LowStock(5)
	require.NoError(t, err)
	require.Equal(t, []domain.Item{
		{Name: "apple", Quantity: 2},
		{Name: "cherry", Quantity: 4},
	}, low)

	low, err = svc.LowStock(0)
	require.NoError(t, err)
	require.Empty(t, low)
}

func TestLowStock_RejectsNegativeThreshold(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.LowStock(-1)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestReport_SortedByName(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.items["cherry"] = 7
	repo.items["apple"] = 10
	repo.items["banana"] = 2

	require.Equal(t, []domain.Item{
		{Name: "apple", Quantity: 10},
		{Name: "banana", Quantity: 2},
		{Name: "cherry", Quantity: 7},
	}, svc.Report())
}

func TestJournal_RecordsTimestamps(t *testing.T) {
	svc, _, _, journal := newTestService()

	require.NoError(t, svc.Add("bolt", 1))
	require.False(t, journal.ops[0].Time.IsZero())
}

func TestOutcome_UnclassifiedError(t *testing.T) {
	svc, _, snapshots, journal := newTestService()
	snapshots.loadErr = errors.New("boom")

	require.Error(t, svc.Load())
	require.Equal(t, "error", journal.ops[len(journal.ops)-1].Result)
}
