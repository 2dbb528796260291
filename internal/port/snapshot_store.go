package port

// SnapshotStore persists the inventory mapping between runs.
type SnapshotStore interface {
	// Load reads the persisted mapping, failing when the file is unreadable
	Load() (map[string]int, error)

	// Save writes the full mapping, replacing the previous snapshot
	Save(items map[string]int) error
}
