package workout

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type variant struct {
	arity int
	build func(fields []float64) Workout
}

var variants = map[Kind]variant{
	KindSwimming: {
		arity: 5,
		build: func(f []float64) Workout { return NewSwimming(int(f[0]), f[1], f[2], f[3], f[4]) },
	},
	KindRunning: {
		arity: 3,
		build: func(f []float64) Workout { return NewRunning(int(f[0]), f[1], f[2]) },
	},
	KindWalking: {
		arity: 4,
		build: func(f []float64) Workout { return NewWalking(int(f[0]), f[1], f[2], f[3]) },
	},
}

// Arity returns the number of positional fields expected for k, or 0 for an unknown kind.
func Arity(k Kind) int {
	return variants[k].arity
}

// Read builds the workout for a sensor package. Fields are assigned positionally:
// action, duration, weight, then the kind-specific extras. The action count is
// truncated toward zero.
func Read(code string, fields []float64) (Workout, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	v := variants[kind]
	if len(fields) != v.arity {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrArityMismatch, kind, v.arity, len(fields))
	}
	for i, f := range fields {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: field %d is %v", ErrInvalidNumericInput, i, f)
		}
	}
	// float64(math.MaxInt64) rounds up to 2^63, so equality already overflows int.
	if math.Abs(fields[0]) >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: action %v out of range", ErrInvalidNumericInput, fields[0])
	}
	return v.build(fields), nil
}

// ReadValues is Read for loosely typed input such as decoded JSON. Each value must
// be a number, a json.Number, or a numeric string.
func ReadValues(code string, raw []any) (Workout, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	if want := Arity(kind); len(raw) != want {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrArityMismatch, kind, want, len(raw))
	}

	fields := make([]float64, len(raw))
	for i, value := range raw {
		f, err := toFloat(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", ErrInvalidNumericInput, i, err)
		}
		fields[i] = f
	}
	return Read(code, fields)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
