package core

// StateTable owns per-widget interaction state across frames, keyed by a
// stable widget identity chosen by the application.
//
// Widgets rebuilt each frame borrow a pointer from the table for the duration
// of one call and never keep it. The table is not safe for concurrent use; it
// belongs to the UI thread like the rest of the tree.
type StateTable[K comparable, S any] struct {
	entries map[K]*S
}

// NewStateTable creates an empty table.
func NewStateTable[K comparable, S any]() *StateTable[K, S] {
	return &StateTable[K, S]{entries: make(map[K]*S)}
}

// Get returns the state for key, creating a zero value on first use.
func (t *StateTable[K, S]) Get(key K) *S {
	if s, ok := t.entries[key]; ok {
		return s
	}
	s := new(S)
	t.entries[key] = s
	return s
}

// Lookup returns the state for key without creating it.
func (t *StateTable[K, S]) Lookup(key K) (*S, bool) {
	s, ok := t.entries[key]
	return s, ok
}

// Delete drops the state for key.
func (t *StateTable[K, S]) Delete(key K) {
	delete(t.entries, key)
}

// Retain drops every entry whose key is not in keep.
func (t *StateTable[K, S]) Retain(keep ...K) {
	set := make(map[K]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}
	for k := range t.entries {
		if _, ok := set[k]; !ok {
			delete(t.entries, k)
		}
	}
}

// Len returns the number of entries.
func (t *StateTable[K, S]) Len() int {
	return len(t.entries)
}
