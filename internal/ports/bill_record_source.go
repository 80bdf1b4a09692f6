package ports

import "context"

// RawRecord is one untyped entry of a bill data file. Position is the
// zero-based index of the entry in its file; Value is whatever the decoder
// produced for it, normally a map[string]any.
type RawRecord struct {
	Position int
	Value    any
}

type BillRecordSource interface {
	Records(ctx context.Context) ([]RawRecord, error)
}
