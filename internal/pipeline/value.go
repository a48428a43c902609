package pipeline

import (
	"xgrowth-backend/internal/query"
)

// Value is an expression computed per document inside Set and Group stages
type Value interface {
	Eval(doc query.Document) any
}

// Field reads a dotted path; missing paths yield nil
type Field string

// Literal is a constant
type Literal struct {
	V any
}

// Cond picks Then when If is truthy, Else otherwise
type Cond struct {
	If, Then, Else Value
}

// Equal compares two values
type Equal struct {
	A, B Value
}

// InArray reports whether Needle is an element of the array Haystack
type InArray struct {
	Needle, Haystack Value
}

// AnyOf is a logical or
type AnyOf []Value

// AllOf is a logical and
type AllOf []Value

// Negate is a logical not
type Negate struct {
	V Value
}

// Size is the length of an array; non-arrays have size 0
type Size struct {
	V Value
}

// GreaterThan compares numbers
type GreaterThan struct {
	A, B Value
}

// Present reports whether a path holds a non-null value
type Present string

type removeValue struct{}

// Remove, used as an assignment value, deletes the target path
var Remove Value = removeValue{}

// Lit wraps a constant
func Lit(v any) Literal { return Literal{V: v} }

func (f Field) Eval(doc query.Document) any {
	v, ok := query.Get(doc, string(f))
	if !ok {
		return nil
	}
	return v
}

func (l Literal) Eval(query.Document) any { return query.Normalize(l.V) }

func (c Cond) Eval(doc query.Document) any {
	if truthy(c.If.Eval(doc)) {
		return c.Then.Eval(doc)
	}
	return c.Else.Eval(doc)
}

func (e Equal) Eval(doc query.Document) any { return query.Equal(e.A.Eval(doc), e.B.Eval(doc)) }

func (in InArray) Eval(doc query.Document) any {
	arr, ok := in.Haystack.Eval(doc).([]any)
	if !ok {
		return false
	}
	needle := in.Needle.Eval(doc)
	for _, v := range arr {
		if query.Equal(v, needle) {
			return true
		}
	}
	return false
}

func (a AnyOf) Eval(doc query.Document) any {
	for _, v := range a {
		if truthy(v.Eval(doc)) {
			return true
		}
	}
	return false
}

func (a AllOf) Eval(doc query.Document) any {
	for _, v := range a {
		if !truthy(v.Eval(doc)) {
			return false
		}
	}
	return true
}

func (n Negate) Eval(doc query.Document) any { return !truthy(n.V.Eval(doc)) }

func (s Size) Eval(doc query.Document) any {
	arr, ok := s.V.Eval(doc).([]any)
	if !ok {
		return float64(0)
	}
	return float64(len(arr))
}

func (g GreaterThan) Eval(doc query.Document) any {
	a, aok := query.Normalize(g.A.Eval(doc)).(float64)
	b, bok := query.Normalize(g.B.Eval(doc)).(float64)
	return aok && bok && a > b
}

func (p Present) Eval(doc query.Document) any {
	return query.Eval(query.Exists{Field: string(p), Exists: true}, doc)
}

func (removeValue) Eval(query.Document) any { return removeValue{} }

// truthy follows document-store semantics: nil, false and zero are false
func truthy(v any) bool {
	switch t := query.Normalize(v).(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	}
	return true
}
