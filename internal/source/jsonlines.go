package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

type record struct {
	Type string `json:"type"`
	Data []any  `json:"data"`
}

// JSONLines reads one JSON object per line, e.g. {"type":"RUN","data":[15000,1,75]}.
// Blank lines are skipped. Numbers are kept as json.Number so no precision is lost
// before coercion.
type JSONLines struct {
	scanner *bufio.Scanner
	line    int
}

// NewJSONLines constructs a JSONLines source reading from r.
func NewJSONLines(r io.Reader) *JSONLines {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &JSONLines{scanner: scanner}
}

// Next implements Source.
func (s *JSONLines) Next(ctx context.Context) (Package, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Package{}, err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return Package{}, fmt.Errorf("read line %d: %w", s.line+1, err)
			}
			return Package{}, io.EOF
		}
		s.line++

		raw := bytes.TrimSpace(s.scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		return decodeRecord(raw, s.line)
	}
}

func decodeRecord(raw []byte, line int) (Package, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return Package{Line: line}, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return Package{Line: line}, fmt.Errorf("%w: line %d: trailing data", ErrMalformedRecord, line)
	}
	if strings.TrimSpace(rec.Type) == "" {
		return Package{Line: line}, fmt.Errorf("%w: line %d: type is required", ErrMalformedRecord, line)
	}
	return Package{Code: rec.Type, Data: rec.Data, Line: line}, nil
}
