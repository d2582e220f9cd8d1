package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// fieldReader pulls typed values out of a wire array. The first conversion
// failure is remembered and reported by err(); later reads return zero values.
type fieldReader struct {
	kind   Kind
	values []any
	failed error
}

func newFieldReader(kind Kind, values []any, size int) (*fieldReader, error) {
	if len(values) < size {
		return nil, newShortArray(kind, size, len(values))
	}
	return &fieldReader{kind: kind, values: values}, nil
}

func (r *fieldReader) fail(i int, v any, want string) {
	if r.failed == nil {
		r.failed = errors.Wrapf(ErrInvalidField, "%s field %d: %T is not %s", r.kind, i, v, want)
	}
}

func (r *fieldReader) err() error {
	return r.failed
}

func (r *fieldReader) str(i int) string {
	switch v := r.values[i].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		r.fail(i, v, "a string")
		return ""
	}
}

func (r *fieldReader) int64(i int) int64 {
	switch v := r.values[i].(type) {
	case nil:
		return 0
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		if v > math.MaxInt64 {
			r.fail(i, v, "an int64")
			return 0
		}
		return int64(v)
	case byte:
		return int64(v)
	case float64:
		if v != math.Trunc(v) || v < -(1<<63) || v >= 1<<63 {
			r.fail(i, v, "an integral int64")
			return 0
		}
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			r.fail(i, v, "an int64")
		}
		return n
	case string:
		if v == "" {
			return 0
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			r.fail(i, v, "an int64")
		}
		return n
	default:
		r.fail(i, v, "an int64")
		return 0
	}
}

func (r *fieldReader) uint64(i int) uint64 {
	switch v := r.values[i].(type) {
	case uint64:
		return v
	case string:
		if v == "" {
			return 0
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			r.fail(i, v, "a uint64")
		}
		return n
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			r.fail(i, v, "a uint64")
		}
		return n
	default:
		n := r.int64(i)
		if n < 0 {
			r.fail(i, v, "a uint64")
			return 0
		}
		return uint64(n)
	}
}

func (r *fieldReader) int(i int) int {
	return int(r.int64(i))
}

func (r *fieldReader) byte(i int) byte {
	n := r.int64(i)
	if n < 0 || n > math.MaxUint8 {
		r.fail(i, r.values[i], "a byte")
		return 0
	}
	return byte(n)
}

func (r *fieldReader) bool(i int) bool {
	switch v := r.values[i].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			r.fail(i, v, "a bool")
		}
		return b
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		r.fail(i, v, "a bool")
		return false
	}
}
