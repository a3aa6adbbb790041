// Package value classifies loosely typed inputs as "nothing" or "something".
//
// A [Value] is a closed tagged union over the shapes callers actually pass
// around: absent, text, ordered sequence, number, boolean, function and any
// other object. [IsNothing] answers whether a value is semantically absent.
package value

import "reflect"

// Kind discriminates the shape held by a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindSequence
	KindNumber
	KindBool
	KindFunc
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindFunc:
		return "func"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union. The zero Value is absent.
type Value struct {
	kind   Kind
	text   string
	items  []any
	number float64
	flag   bool
	fn     any
	object any
}

// Absent returns the "no value" marker.
func Absent() Value { return Value{} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Sequence wraps an ordered list of items. The slice is copied.
func Sequence(items ...any) Value {
	return Value{kind: KindSequence, items: append([]any(nil), items...)}
}

// Number wraps a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Func wraps a callable. A nil function is absent.
func Func(fn any) Value {
	if fn == nil || isNilRef(reflect.ValueOf(fn)) {
		return Absent()
	}
	return Value{kind: KindFunc, fn: fn}
}

// Object wraps anything that is not one of the other shapes.
func Object(o any) Value {
	if o == nil {
		return Absent()
	}
	return Value{kind: KindObject, object: o}
}

// Kind reports the shape held by v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the wrapped string and whether v is text.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Len returns the length of text or sequence values and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindText:
		return len(v.text)
	case KindSequence:
		return len(v.items)
	default:
		return 0
	}
}

// Items returns a copy of the sequence items, or nil for other kinds.
func (v Value) Items() []any {
	if v.kind != KindSequence {
		return nil
	}
	return append([]any(nil), v.items...)
}

// Number returns the wrapped number and whether v is a number.
func (v Value) Number() (float64, bool) { return v.number, v.kind == KindNumber }

// Bool returns the wrapped boolean and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.flag, v.kind == KindBool }

// Interface returns the wrapped Go value, or nil when absent.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindSequence:
		return v.Items()
	case KindNumber:
		return v.number
	case KindBool:
		return v.flag
	case KindFunc:
		return v.fn
	case KindObject:
		return v.object
	default:
		return nil
	}
}

// IsNothing reports whether v is semantically absent: the absent marker,
// empty text or an empty sequence. Whitespace-only text, zero, false,
// functions and objects are never nothing.
func IsNothing(v Value) bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindText:
		return len(v.text) == 0
	case KindSequence:
		return len(v.items) == 0
	default:
		return false
	}
}
