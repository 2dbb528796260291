package port

import "stockroom/internal/core/domain"

// Journal is the append-only record of store operations.
type Journal interface {
	// Append writes one operation record
	Append(op domain.Operation) error
}
