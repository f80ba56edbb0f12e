package main

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Bindings for named containers. Every container created in a session is
// stored under its name in a binding table.

// --- Kinds -----------------------------------------------------------------

// Kind is the category of container a binding holds.
type Kind int8

// Container kinds available to users.
const (
	NoKind Kind = iota
	LinkedListKind
	ArrayListKind
	HashMapKind
	QueueKind
	StackKind
)

var kindNames = map[string]Kind{
	"list":      LinkedListKind,
	"arraylist": ArrayListKind,
	"map":       HashMapKind,
	"queue":     QueueKind,
	"stack":     StackKind,
}

// KindFromString returns the kind for a user-supplied name, or NoKind.
func KindFromString(s string) Kind {
	return kindNames[s]
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "none"
}

// --- Bindings --------------------------------------------------------------

// Binding is a named container.
type Binding struct {
	name string
	Kind Kind
	h    handler
}

func (b *Binding) String() string {
	return fmt.Sprintf("<%s '%s':%d>", b.Kind, b.name, b.h.size())
}

// Name gets the binding's name.
func (b *Binding) Name() string {
	return b.name
}

// BindingTable stores bindings by name (map-like semantics).
type BindingTable struct {
	table map[string]*Binding
}

// NewBindingTable creates an empty binding table.
func NewBindingTable() *BindingTable {
	return &BindingTable{table: make(map[string]*Binding)}
}

// Resolve checks for a binding in the table.
// Returns a binding or nil.
func (bt *BindingTable) Resolve(name string) *Binding {
	return bt.table[name]
}

// Define creates a new, empty container of kind k and binds it to name.
// Overwrites an existing binding with this name, if any.
// Returns the new binding and the previously stored binding (or nil).
func (bt *BindingTable) Define(name string, k Kind) (*Binding, *Binding, error) {
	if len(name) == 0 {
		return nil, nil, fmt.Errorf("container name must not be empty")
	}
	h := newHandler(k)
	if h == nil {
		return nil, nil, fmt.Errorf("unknown container kind")
	}
	b := &Binding{name: name, Kind: k, h: h}
	old := bt.table[name]
	bt.table[name] = b
	tracer().P("binding", name).Debugf("defined %s", k)
	return b, old, nil
}

// Size counts the bindings in the table.
func (bt *BindingTable) Size() int {
	return len(bt.table)
}

// Names returns the names of all bindings, sorted.
func (bt *BindingTable) Names() []string {
	set := treeset.NewWithStringComparator()
	for name := range bt.table {
		set.Add(name)
	}
	names := make([]string, 0, set.Size())
	for _, n := range set.Values() {
		names = append(names, n.(string))
	}
	return names
}
