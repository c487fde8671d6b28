// SPDX-License-Identifier: MIT
// Package: eegmst/channels
//
// channels.go — Set constructor, queries and structural matching.
//
// Determinism:
//   • Names() returns labels in construction order, always a fresh copy.
//   • Match reports the first mismatching position, scanning left to right.

package channels

import (
	"errors"
	"fmt"
)

// Sentinel errors for channel sets.
var (
	// ErrEmptySet indicates a Set was built from zero labels.
	ErrEmptySet = errors.New("channels: empty channel set")

	// ErrEmptyLabel indicates one of the labels is the empty string.
	ErrEmptyLabel = errors.New("channels: empty channel label")

	// ErrDuplicateLabel indicates the same label was supplied twice.
	ErrDuplicateLabel = errors.New("channels: duplicate channel label")

	// ErrStructural indicates that input channel count or ordering does not match
	// the configured Set. Every stage rejects such input before computing anything.
	ErrStructural = errors.New("channels: structural mismatch")
)

// Set is a fixed, ordered collection of unique channel labels.
// The zero value is an empty set; build one with New or Standard1020.
type Set struct {
	names []string
	index map[string]int
}

// New returns a Set holding names in the given order.
//
// Errors:
//   - ErrEmptySet if names is empty.
//   - ErrEmptyLabel if any name is "".
//   - ErrDuplicateLabel if a name repeats.
//
// Complexity: O(n).
func New(names ...string) (Set, error) {
	if len(names) == 0 {
		return Set{}, ErrEmptySet
	}
	s := Set{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return Set{}, fmt.Errorf("%w at position %d", ErrEmptyLabel, i)
		}
		if prev, dup := s.index[name]; dup {
			return Set{}, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateLabel, name, prev, i)
		}
		s.names[i] = name
		s.index[name] = i
	}

	return s, nil
}

// MustNew is New for package-level configuration values; it panics on error.
func MustNew(names ...string) Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of channels.
func (s Set) Len() int { return len(s.names) }

// Names returns a copy of the labels in Set order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Name returns the label at position i. It panics when i is out of range,
// like a slice index would.
func (s Set) Name(i int) string { return s.names[i] }

// Index returns the position of name and whether it belongs to the Set.
func (s Set) Index(name string) (int, bool) {
	i, ok := s.index[name]

	return i, ok
}

// Contains reports whether name is one of the Set's labels.
func (s Set) Contains(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Equal reports whether both sets hold the same labels in the same order.
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for i := range s.names {
		if s.names[i] != other.names[i] {
			return false
		}
	}

	return true
}

// Match checks that labels enumerate the Set exactly, in order.
// The returned error wraps ErrStructural and names the first offending position.
//
// Complexity: O(n).
func (s Set) Match(labels []string) error {
	if len(labels) != len(s.names) {
		return fmt.Errorf("%w: got %d channels, want %d", ErrStructural, len(labels), len(s.names))
	}
	for i, label := range labels {
		if label != s.names[i] {
			return fmt.Errorf("%w: position %d is %q, want %q", ErrStructural, i, label, s.names[i])
		}
	}

	return nil
}

// MatchCount checks only the channel count; used when input carries no labels.
func (s Set) MatchCount(n int) error {
	if n != len(s.names) {
		return fmt.Errorf("%w: got %d channels, want %d", ErrStructural, n, len(s.names))
	}

	return nil
}
