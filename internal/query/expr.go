// Package query is a small filter language for documents: a tree of field
// predicates joined by And/Or/Not. The same tree evaluates in memory (Eval)
// and compiles to SQL (ToClause).
package query

import (
	"github.com/google/uuid"
)

// Expr is a filter expression node
type Expr interface {
	isExpr()
}

// Eq matches when the field equals Value. Array fields match when any element does.
// A nil Value matches missing or null fields.
type Eq struct {
	Field string
	Value any
}

// In matches when the field equals any of Values
type In struct {
	Field  string
	Values []any
}

// Exists matches on presence (non-null) of the field
type Exists struct {
	Field  string
	Exists bool
}

// Overlaps matches when the array field shares at least one element with Values
type Overlaps struct {
	Field  string
	Values []any
}

// Contains is a case-insensitive substring match on a string field
type Contains struct {
	Field     string
	Substring string
}

// And matches when every child matches. An empty And matches everything.
type And []Expr

// Or matches when any child matches. An empty Or matches nothing.
type Or []Expr

// Not negates its child
type Not struct {
	Expr Expr
}

func (Eq) isExpr()       {}
func (In) isExpr()       {}
func (Exists) isExpr()   {}
func (Overlaps) isExpr() {}
func (Contains) isExpr() {}
func (And) isExpr()      {}
func (Or) isExpr()       {}
func (Not) isExpr()      {}

// UUIDs converts ids to filter values
func UUIDs(ids []uuid.UUID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Strings converts strings to filter values
func Strings(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Fields lists the distinct fields referenced by e, in first-seen order
func Fields(e Expr) []string {
	seen := map[string]bool{}
	var out []string
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	var walk func(Expr)
	walk = func(e Expr) {
		switch t := e.(type) {
		case Eq:
			add(t.Field)
		case In:
			add(t.Field)
		case Exists:
			add(t.Field)
		case Overlaps:
			add(t.Field)
		case Contains:
			add(t.Field)
		case And:
			for _, c := range t {
				walk(c)
			}
		case Or:
			for _, c := range t {
				walk(c)
			}
		case Not:
			walk(t.Expr)
		}
	}
	walk(e)
	return out
}
