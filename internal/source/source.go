// Package source supplies sensor packages to the tracker in arrival order.
package source

import (
	"context"
	"errors"
)

// ErrMalformedRecord marks a single unreadable record. The source stays usable and
// the next call to Next moves on to the following record.
var ErrMalformedRecord = errors.New("malformed record")

// Package is one reading from a sensor: the workout type code and its positional fields.
type Package struct {
	Code string
	Data []any
	// Line is the 1-based position of the record in its source.
	Line int
}

// Source yields packages until it returns io.EOF.
type Source interface {
	Next(ctx context.Context) (Package, error)
}
