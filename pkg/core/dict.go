package core

// Dict is an ordered string-keyed mapping of Values, the document
// model's only composite type. Iteration order is insertion order;
// re-assigning an existing key replaces the value but keeps the key's
// original slot.
type Dict struct {
	keys    []string
	entries map[string]Value
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

// ValueKind implements Value.
func (*Dict) ValueKind() Kind { return KindDict }

func (*Dict) valueNode() {}

// Set binds key to v. A key seen for the first time is appended; a
// re-assigned key keeps its original position with the new value.
func (d *Dict) Set(key string, v Value) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = v
}

// Get returns the value bound to key, if any.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Keys returns the keys in iteration order. The returned slice is a
// copy; mutating it does not affect the dictionary.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}
