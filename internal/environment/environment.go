// Package environment implements the "spaghetti stack": a grow-only arena
// of scopes, addressed by monotonic integer ID, with parent/child edges
// stored as IDs rather than live references. Built once by the scope
// analyzer, then read-only for every later pass.
package environment

import "fmt"

// ID identifies a scope. IDs are dense and strictly monotonic starting
// from 0 (the root scope).
type ID int

// Kind classifies a scope by the construct that opened it.
type Kind int

const (
	Root Kind = iota
	FnBlock
	ForBlock
	IfBlock
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "Root"
	case FnBlock:
		return "FnBlock"
	case ForBlock:
		return "ForBlock"
	case IfBlock:
		return "IfBlock"
	default:
		return "Unknown"
	}
}

// Type is a symbol's value type. Void is legal only as a function's return
// type, never as a variable's.
type Type int

const (
	Int Type = iota
	Float
	String
	Bool
	Void
)

func (t Type) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Void:
		return "Void"
	default:
		return "Unknown"
	}
}

// SymbolInfo is what a scope records against a bound name.
type SymbolInfo struct {
	IsVariable bool
	Type       Type
}

// child is one parent->child edge, optionally labeled with a name (used to
// find a function's scope by name from root).
type child struct {
	id   ID
	name string
}

// scope is one node in the arena.
type scope struct {
	kind     Kind
	parent   *ID
	children []child
	symbols  map[string]SymbolInfo
	params   []Type // ordered parameter types; only meaningful for FnBlock scopes
}

// Environment is the arena of scopes, indexed by ID.
type Environment struct {
	scopes []*scope
}

// New creates an environment containing only the root scope, which always
// has ID 0.
func New() *Environment {
	e := &Environment{}
	e.scopes = append(e.scopes, &scope{kind: Root, symbols: make(map[string]SymbolInfo)})
	return e
}

// RootID is always 0.
const RootID ID = 0

// CreateScope allocates a fresh scope under an optional parent, returning
// its strictly monotonic new ID.
func (e *Environment) CreateScope(parent *ID, kind Kind) ID {
	id := ID(len(e.scopes))
	e.scopes = append(e.scopes, &scope{kind: kind, parent: parent, symbols: make(map[string]SymbolInfo)})
	return id
}

func (e *Environment) get(id ID) *scope {
	return e.scopes[int(id)]
}

// InsertSymbol adds a binding to scope id. If isParam is true, the symbol's
// type is also appended to the scope's parameter-type list, and id's kind
// must be FnBlock — this is a programmer invariant enforced by the scope
// analyzer's own call discipline, so a violation panics rather than
// returning an error.
func (e *Environment) InsertSymbol(id ID, name string, info SymbolInfo, isParam bool) {
	s := e.get(id)
	if isParam && s.kind != FnBlock {
		panic(fmt.Sprintf("environment: InsertSymbol isParam=true on non-FnBlock scope %d (%s)", id, s.kind))
	}
	s.symbols[name] = info
	if isParam {
		s.params = append(s.params, info.Type)
	}
}

// AttachChild records a parent->child edge, optionally labeled with a name
// so FunctionParamTypes can later find a function's scope directly.
func (e *Environment) AttachChild(parentID, childID ID, name string) {
	p := e.get(parentID)
	p.children = append(p.children, child{id: childID, name: name})
}

// LookupLocal looks up name in scope id only, not climbing to ancestors.
func (e *Environment) LookupLocal(id ID, name string) (SymbolInfo, bool) {
	info, ok := e.get(id).symbols[name]
	return info, ok
}

// LookupClimb walks parent pointers from id toward root, returning the
// first binding for name whose IsVariable flag equals isVar.
func (e *Environment) LookupClimb(id ID, name string, isVar bool) (SymbolInfo, bool) {
	cur := &id
	for cur != nil {
		if info, ok := e.get(*cur).symbols[name]; ok && info.IsVariable == isVar {
			return info, true
		}
		cur = e.get(*cur).parent
	}
	return SymbolInfo{}, false
}

// ExistsInChain reports whether name is bound anywhere from id to root,
// regardless of IsVariable — used by redeclaration checks, which forbid a
// name reappearing in any nested scope irrespective of symbol kind.
func (e *Environment) ExistsInChain(id ID, name string) bool {
	cur := &id
	for cur != nil {
		if _, ok := e.get(*cur).symbols[name]; ok {
			return true
		}
		cur = e.get(*cur).parent
	}
	return false
}

// NthChildOfKind returns the ID of the n-th (1-indexed) child of parentID
// whose kind equals kind, in source/insertion order.
func (e *Environment) NthChildOfKind(parentID ID, n int, kind Kind) (ID, bool) {
	count := 0
	for _, c := range e.get(parentID).children {
		if e.get(c.id).kind == kind {
			count++
			if count == n {
				return c.id, true
			}
		}
	}
	return 0, false
}

// FunctionParamTypes looks up a named function scope directly under root
// and returns its ordered parameter types.
func (e *Environment) FunctionParamTypes(fnName string) ([]Type, bool) {
	for _, c := range e.get(RootID).children {
		if c.name == fnName && e.get(c.id).kind == FnBlock {
			return e.get(c.id).params, true
		}
	}
	return nil, false
}

// ParentOf returns id's parent, or false at the root.
func (e *Environment) ParentOf(id ID) (ID, bool) {
	p := e.get(id).parent
	if p == nil {
		return 0, false
	}
	return *p, true
}

// KindOf returns the scope kind of id.
func (e *Environment) KindOf(id ID) Kind {
	return e.get(id).kind
}

// HasForBlockAncestor reports whether id or any of its ancestors is a
// ForBlock scope, used to validate a `break` statement.
func (e *Environment) HasForBlockAncestor(id ID) bool {
	cur := &id
	for cur != nil {
		if e.get(*cur).kind == ForBlock {
			return true
		}
		cur = e.get(*cur).parent
	}
	return false
}
