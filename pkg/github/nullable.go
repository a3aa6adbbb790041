package github

// Nullable is a field with three states: unset (omitted from the payload),
// explicitly null (clears the value on GitHub) or set to a value.
// The zero Nullable is unset.
type Nullable[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns a Nullable holding v.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, set: true}
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true, null: true}
}

// IsSet reports whether the field is present, either null or with a value.
func (n Nullable[T]) IsSet() bool { return n.set }

// IsNull reports whether the field is an explicit null.
func (n Nullable[T]) IsNull() bool { return n.set && n.null }

// Get returns the value and whether one is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.set && !n.null
}
