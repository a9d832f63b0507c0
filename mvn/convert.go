// SPDX-License-Identifier: MIT

package mvn

import (
	"encoding/json"
	"math"
	"reflect"
)

// sequence returns the reflected value of v when v is a slice or an array.
// Strings, maps, scalars and nil are not sequences. Neither are byte slices
// such as json.RawMessage: they hold encoded text, not numbers.
func sequence(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// number converts a reflected element to a finite float64. Interface
// wrappers (as produced by encoding/json and yaml.v3) are unwrapped first.
func number(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}

	var f float64
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f = v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(v.Uint())
	case reflect.String:
		n, ok := v.Interface().(json.Number)
		if !ok {
			return 0, false
		}
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	return f, isFinite(f)
}

// floats copies a sequence of numbers into a fresh []float64.
// isSeq is false when v is not a slice or array; bad is the index of the
// first element that is not a finite number, or -1.
func floats(v any) (out []float64, isSeq bool, bad int) {
	if fast, ok := v.([]float64); ok {
		out = make([]float64, len(fast))
		for i, f := range fast {
			if !isFinite(f) {
				return nil, true, i
			}
			out[i] = f
		}
		return out, true, -1
	}

	rv, ok := sequence(v)
	if !ok {
		return nil, false, -1
	}
	out = make([]float64, rv.Len())
	for i := range out {
		f, ok := number(rv.Index(i))
		if !ok {
			return nil, true, i
		}
		out[i] = f
	}

	return out, true, -1
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
