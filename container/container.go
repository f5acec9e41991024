// Package container provides a generic string-keyed value container with
// optional case-normalization of keys and string values.
package container

import (
	"golang.org/x/exp/maps"
)

// Config controls case-normalization. It is fixed at construction time.
type Config struct {
	// LowercaseKeys lowercases every key before lookup and storage.
	LowercaseKeys bool
	// LowercaseValues lowercases every string-typed value before storage.
	// Non-string values are stored unchanged.
	LowercaseValues bool
}

type Container[T any] struct {
	entries map[string]T
	config  Config
}

// New returns an empty container with default configuration.
func New[T any]() *Container[T] {
	return NewWithConfig[T](nil, Config{})
}

// NewFrom returns a container holding a copy of initial, with default
// configuration.
func NewFrom[T any](initial map[string]T) *Container[T] {
	return NewWithConfig(initial, Config{})
}

// NewWithConfig returns a container holding a copy of initial, normalized
// according to cfg. A nil initial map yields an empty container.
func NewWithConfig[T any](initial map[string]T, cfg Config) *Container[T] {
	c := &Container[T]{
		entries: make(map[string]T, len(initial)),
		config:  cfg,
	}
	c.prepareData(initial)
	return c
}

// prepareData runs the one-time normalization pass over initial entries.
func (c *Container[T]) prepareData(initial map[string]T) {
	for key, value := range initial {
		c.entries[c.normalizeKey(key)] = c.normalizeValue(value)
	}
}

// Has reports whether key is present. The query key is normalized before
// lookup, so with LowercaseKeys any casing of a stored key matches.
func (c *Container[T]) Has(key string) bool {
	_, found := c.entries[c.normalizeKey(key)]
	return found
}

// HasValue reports whether key is present and holds value. The probe value
// is normalized before comparison. Equality is strict and shallow: values
// of an uncomparable dynamic type (slices, maps, funcs) never compare equal.
func (c *Container[T]) HasValue(key string, value T) bool {
	stored, found := c.entries[c.normalizeKey(key)]
	if !found {
		return false
	}
	return shallowEqual(stored, c.normalizeValue(value))
}

// Get returns the value stored under key, or the zero value of T when the
// key is absent. Use Lookup to distinguish the two.
func (c *Container[T]) Get(key string) T {
	return c.entries[c.normalizeKey(key)]
}

// GetOrDefault returns the value stored under key, or def when absent.
func (c *Container[T]) GetOrDefault(key string, def T) T {
	if value, found := c.entries[c.normalizeKey(key)]; found {
		return value
	}
	return def
}

// Lookup returns the value stored under key and whether it was present.
func (c *Container[T]) Lookup(key string) (T, bool) {
	value, found := c.entries[c.normalizeKey(key)]
	return value, found
}

// Put stores the normalized value under the normalized key, overwriting any
// existing entry. It returns the container for chaining.
func (c *Container[T]) Put(key string, value T) *Container[T] {
	c.entries[c.normalizeKey(key)] = c.normalizeValue(value)
	return c
}

// PutIfNotExists stores the entry only when the key is absent. It reports
// whether the entry was stored.
func (c *Container[T]) PutIfNotExists(key string, value T) bool {
	if c.Has(key) {
		return false
	}
	c.Put(key, value)
	return true
}

// Forget deletes the entry stored under key. Absent keys are a no-op. It
// returns the container for chaining.
func (c *Container[T]) Forget(key string) *Container[T] {
	delete(c.entries, c.normalizeKey(key))
	return c
}

// Populate puts every entry of data into the container and returns the
// container for chaining.
func (c *Container[T]) Populate(data map[string]T) *Container[T] {
	for key, value := range data {
		c.Put(key, value)
	}
	return c
}

// Clear removes all entries. The internal map is emptied in place, so live
// views obtained through All remain attached.
func (c *Container[T]) Clear() {
	maps.Clear(c.entries)
}

// Items returns a snapshot copy of the entries. Mutating the returned map
// does not affect the container.
func (c *Container[T]) Items() map[string]T {
	return maps.Clone(c.entries)
}

// All returns the live internal map. Writes through it bypass normalization
// and can break the container's invariants; prefer Items unless in-place
// mutation is required.
func (c *Container[T]) All() map[string]T {
	return c.entries
}

// Keys returns all stored keys, in unspecified order.
func (c *Container[T]) Keys() []string {
	return maps.Keys(c.entries)
}

// Values returns all stored values, in unspecified order.
func (c *Container[T]) Values() []T {
	return maps.Values(c.entries)
}

// Len returns the number of stored entries.
func (c *Container[T]) Len() int {
	return len(c.entries)
}

// Empty reports whether the container holds no entries.
func (c *Container[T]) Empty() bool {
	return len(c.entries) == 0
}

// Clone returns an independent container with the same entries and config.
func (c *Container[T]) Clone() *Container[T] {
	return &Container[T]{
		entries: maps.Clone(c.entries),
		config:  c.config,
	}
}

// Config returns the configuration the container was built with.
func (c *Container[T]) Config() Config {
	return c.config
}
