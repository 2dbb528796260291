package domain

import "time"

type OpKind string

const (
	OpAdd    OpKind = "add"
	OpRemove OpKind = "remove"
	OpQuery  OpKind = "query"
	OpLoad   OpKind = "load"
	OpSave   OpKind = "save"
)

// Operation is one journal record: a single store operation and its outcome.
// Records are append-only and never mutated after creation. For load and
// save records Item is "-" and Qty carries the number of items moved; for
// query records Qty carries the returned quantity.
type Operation struct {
	Time   time.Time
	Kind   OpKind
	Item   string
	Qty    int
	Result string
}
