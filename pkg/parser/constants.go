package parser

import (
	"sort"

	"github.com/dicta-lang/dicta/pkg/core"
)

// constTable is the constant namespace of one parse session: a flat,
// mutable name→Value mapping with last-write-wins redefinition. It is
// owned by the session that created it and discarded when the session
// ends; nothing outside this package can reach it.
type constTable struct {
	values map[string]core.Value
}

func newConstTable() *constTable {
	return &constTable{values: make(map[string]core.Value)}
}

// define binds name to v, overwriting any prior binding.
func (t *constTable) define(name string, v core.Value) {
	t.values[name] = v
}

// resolve returns the current binding for name, if any.
func (t *constTable) resolve(name string) (core.Value, bool) {
	v, ok := t.values[name]
	return v, ok
}

// names returns all bound names, sorted.
func (t *constTable) names() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
