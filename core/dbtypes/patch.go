package dbtypes

import "encoding/json"

// Patch is an optional field of an Update shape. The zero value is unset and
// is omitted from both JSON (via omitzero) and generated assignments. For a
// nullable column T is a pointer, so Set[*T](nil) writes NULL.
type Patch[T any] struct {
	Value T
	Set   bool
}

// Set returns a Patch carrying v.
func Set[T any](v T) Patch[T] {
	return Patch[T]{Value: v, Set: true}
}

// Null returns a set Patch holding a nil pointer, which writes NULL.
func Null[T any]() Patch[*T] {
	return Patch[*T]{Set: true}
}

// IsZero reports whether the field is unset.
func (p Patch[T]) IsZero() bool {
	return !p.Set
}

// Get returns the value and whether it was set.
func (p Patch[T]) Get() (T, bool) {
	return p.Value, p.Set
}

// MarshalJSON implements json.Marshaler.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value)
}

// UnmarshalJSON implements json.Unmarshaler. A key present in the payload,
// even with a null value, marks the field as set.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.Value = v
	p.Set = true
	return nil
}

func (p Patch[T]) patchState() (any, bool) {
	return p.Value, p.Set
}

// patcher lets reflection code read a Patch without knowing T.
type patcher interface {
	patchState() (any, bool)
}
