package document

import (
	"math"
	"reflect"
)

// Equal reports whether two document values are structurally equal.
// Mappings compare by key set and values regardless of key order,
// sequences compare element by element. Integers compare exactly by
// value across signed and unsigned kinds, floats compare only with
// floats, so 1 and 1.0 differ. Values of different shapes (a mapping and
// a scalar, say) are never equal.
func Equal(a, b any) bool {
	a, b = normalize(a), normalize(b)

	switch av := a.(type) {
	case nil:
		return b == nil
	case *Map:
		bv, ok := b.(*Map)
		if !ok {
			return false
		}
		return equalMaps(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	if ai, ok := integer(a); ok {
		bi, ok := integer(b)
		return ok && ai == bi
	}
	if af, ok := float(a); ok {
		bf, ok := float(b)
		return ok && af == bf
	}

	return reflect.DeepEqual(a, b)
}

func equalMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, key := range a.keys {
		bv, ok := b.Get(key)
		if !ok || !Equal(a.values[key], bv) {
			return false
		}
	}
	return true
}

// intValue is an integer of any kind. Negative values live in neg,
// everything else in pos.
type intValue struct {
	negative bool
	neg      int64
	pos      uint64
}

// integer folds the integer kinds decoded from YAML into an intValue.
func integer(v any) (intValue, bool) {
	switch n := v.(type) {
	case int:
		return signed(int64(n)), true
	case int8:
		return signed(int64(n)), true
	case int16:
		return signed(int64(n)), true
	case int32:
		return signed(int64(n)), true
	case int64:
		return signed(n), true
	case uint:
		return intValue{pos: uint64(n)}, true
	case uint8:
		return intValue{pos: uint64(n)}, true
	case uint16:
		return intValue{pos: uint64(n)}, true
	case uint32:
		return intValue{pos: uint64(n)}, true
	case uint64:
		return intValue{pos: n}, true
	default:
		return intValue{}, false
	}
}

func signed(n int64) intValue {
	if n < 0 {
		return intValue{negative: true, neg: n}
	}
	return intValue{pos: uint64(n)}
}

// float widens the float kinds. NaN is never a float here, so it falls
// through to DeepEqual and is unequal to itself.
func float(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
