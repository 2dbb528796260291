package port

// StockRepository holds the item -> quantity mapping. Implementations keep
// plain state; every inventory rule lives in the service layer.
type StockRepository interface {
	// Get returns the stored quantity and whether the item exists
	Get(name string) (int, bool)

	// Put stores the quantity for an item, creating the entry when absent
	Put(name string, qty int)

	// Delete drops an item from the mapping
	Delete(name string)

	// Items returns a copy of the full mapping
	Items() map[string]int

	// Replace swaps in a new mapping, discarding the previous one
	Replace(items map[string]int)
}
