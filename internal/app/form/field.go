// Package form holds per-input form state: a value paired with the messages
// displayed next to it. Every operation returns a new value; nothing is
// mutated in place, so a Field can be copied freely between requests and
// templates.
package form

import "slices"

// Field pairs the current value of one input with its display messages.
type Field[T any] struct {
	Value    T
	Messages []string
}

// NewField returns a Field holding initial and no messages.
func NewField[T any](initial T) Field[T] {
	return Field[T]{Value: initial}
}

// OnChange replaces the value and clears the messages.
func (f Field[T]) OnChange(v T) Field[T] {
	return Field[T]{Value: v}
}

// Validate runs pred against the current value and stores its result as the
// field's messages. The boolean reports whether pred returned no messages.
func (f Field[T]) Validate(pred func(T) []string) (Field[T], bool) {
	msgs := pred(f.Value)
	return Field[T]{Value: f.Value, Messages: slices.Clone(msgs)}, len(msgs) == 0
}

// WithMessages overwrites the messages and keeps the value. It is how errors
// produced elsewhere (the domain validator) are shown next to this input.
func (f Field[T]) WithMessages(msgs []string) Field[T] {
	return Field[T]{Value: f.Value, Messages: slices.Clone(msgs)}
}

// ClearMessages returns the field with the value kept and no messages.
func (f Field[T]) ClearMessages() Field[T] {
	return Field[T]{Value: f.Value}
}

// Valid reports whether the field currently has no messages.
func (f Field[T]) Valid() bool {
	return len(f.Messages) == 0
}
