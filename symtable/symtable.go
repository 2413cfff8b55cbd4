/*
File    : gobasic/symtable/symtable.go
Package : symtable
*/

// Package symtable implements BASIC's lexical scope chain. It generalizes
// scope/scope.go's Scope (which tracks three parallel maps — Variables,
// Consts, LetVars/LetTypes — for GoMix's richer binding forms) down to the
// single binding form spec.md's VAR statement needs: a value plus one
// "protected" bit shared by constants and builtins.
package symtable

import "github.com/basiclang/gobasic/value"

// SymbolTable is one link in the lexical scope chain. Lookups walk up
// Parent; declarations only ever touch the local table, matching the
// teacher's LookUp-vs-Bind split.
type SymbolTable struct {
	vars      map[string]value.Value
	protected map[string]bool
	Parent    *SymbolTable
}

// New creates a symbol table chained to parent. Pass nil for the global
// table.
func New(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		vars:      make(map[string]value.Value),
		protected: make(map[string]bool),
		Parent:    parent,
	}
}

// Get resolves name by walking from this table up through every parent,
// returning the first binding found, matching Scope.LookUp's traversal
// order (innermost scope wins).
func (s *SymbolTable) Get(name string) (value.Value, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, false
}

// Declare binds name in THIS table only, shadowing any outer binding of
// the same name. protected marks the binding as immune to Set (used for
// the predefined constants NULL/TRUE/FALSE/PI and for builtin
// registration). There is no Delete operation.
func (s *SymbolTable) Declare(name string, v value.Value, protected bool) {
	s.vars[name] = v
	if protected {
		s.protected[name] = true
	}
}

// Set walks the chain looking for an existing binding of name and updates
// it in place, matching Scope.Assign. It returns an error if name is
// bound nowhere in the chain, or if the binding it finds is protected.
func (s *SymbolTable) Set(name string, v value.Value) error {
	table := s.owner(name)
	if table == nil {
		return &UndefinedError{Name: name}
	}
	if table.protected[name] {
		return &ProtectedError{Name: name}
	}
	table.vars[name] = v
	return nil
}

// owner returns the table in the chain (starting at s) that holds a
// binding for name, or nil if none does.
func (s *SymbolTable) owner(name string) *SymbolTable {
	if _, ok := s.vars[name]; ok {
		return s
	}
	if s.Parent != nil {
		return s.Parent.owner(name)
	}
	return nil
}

// IsProtected reports whether name is bound and protected anywhere in the
// chain.
func (s *SymbolTable) IsProtected(name string) bool {
	table := s.owner(name)
	return table != nil && table.protected[name]
}

// Child creates a new table whose parent is s, satisfying
// value.Environment. IF/FOR/WHILE bodies do not get a child table; the
// interpreter builds a function call's local frame with New directly.
func (s *SymbolTable) Child() value.Environment {
	return New(s)
}

// UndefinedError reports assignment to a name with no existing binding.
type UndefinedError struct{ Name string }

func (e *UndefinedError) Error() string { return "'" + e.Name + "' is not defined" }

// ProtectedError reports assignment to a protected (constant or builtin)
// name.
type ProtectedError struct{ Name string }

func (e *ProtectedError) Error() string {
	return "cannot assign to protected name '" + e.Name + "'"
}
