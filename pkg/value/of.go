package value

import "reflect"

// Of classifies a dynamic Go value.
//
// nil interfaces and nil pointers, maps, channels, functions and slices are
// absent. Strings are text, slices and arrays are sequences, numeric kinds
// are numbers, bools are booleans and functions are funcs. Everything else,
// maps and structs included, is an object. A Value passed to Of is returned
// unchanged.
func Of(x any) Value {
	if v, ok := x.(Value); ok {
		return v
	}
	if x == nil {
		return Absent()
	}

	rv := reflect.ValueOf(x)
	if isNilRef(rv) {
		return Absent()
	}

	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return Value{kind: KindSequence, items: items}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Func:
		return Value{kind: KindFunc, fn: x}
	default:
		return Value{kind: KindObject, object: x}
	}
}

// IsNothingAny is IsNothing(Of(x)).
func IsNothingAny(x any) bool {
	return IsNothing(Of(x))
}

func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
