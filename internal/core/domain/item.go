package domain

import (
	"fmt"
	"strings"
)

// Item is one inventory row: an item name and its on-hand quantity.
// Quantities are never negative; an item that reaches zero is deleted
// rather than stored.
type Item struct {
	Name     string
	Quantity int
}

// MaxNameLen is the longest accepted item name. Snapshot and journal
// records are single lines, so names stay bounded too.
const MaxNameLen = 4096

// ValidateItemName rejects names that cannot live in the store or its
// line-oriented files. Names are case-sensitive; commas and interior
// spaces are legal.
func ValidateItemName(name string) error {
	if name == "" {
		return fmt.Errorf("item name must not be empty: %w", ErrValidation)
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("item name %q must not contain line breaks: %w", name, ErrValidation)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("item name of %d bytes exceeds %d: %w", len(name), MaxNameLen, ErrValidation)
	}
	return nil
}

// ValidateQuantity rejects amounts that are not positive integers.
func ValidateQuantity(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d: %w", qty, ErrValidation)
	}
	return nil
}
