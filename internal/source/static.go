package source

import (
	"context"
	"io"
)

// Static replays a fixed list of packages.
type Static struct {
	packages []Package
	index    int
}

// NewStatic constructs a Static source over the provided packages.
func NewStatic(packages ...Package) *Static {
	out := make([]Package, len(packages))
	for i, p := range packages {
		if p.Line == 0 {
			p.Line = i + 1
		}
		out[i] = p
	}
	return &Static{packages: out}
}

// Samples returns the built-in demo readings.
func Samples() *Static {
	return NewStatic(
		Package{Code: "SWM", Data: []any{720, 1, 80, 25, 40}},
		Package{Code: "RUN", Data: []any{15000, 1, 75}},
		Package{Code: "WLK", Data: []any{9000, 1, 75, 180}},
	)
}

// Next implements Source.
func (s *Static) Next(ctx context.Context) (Package, error) {
	if err := ctx.Err(); err != nil {
		return Package{}, err
	}
	if s.index >= len(s.packages) {
		return Package{}, io.EOF
	}
	p := s.packages[s.index]
	s.index++
	return p, nil
}
