package query

import (
	"strings"
)

// Eval reports whether doc satisfies e. A nil expression matches everything.
func Eval(e Expr, doc Document) bool {
	switch t := e.(type) {
	case nil:
		return true
	case Eq:
		v, ok := Get(doc, t.Field)
		if t.Value == nil {
			return !ok || v == nil || anyElement(v, func(x any) bool { return x == nil })
		}
		return ok && anyElement(v, func(x any) bool { return Equal(x, t.Value) })
	case In:
		v, ok := Get(doc, t.Field)
		if !ok {
			return false
		}
		return anyElement(v, func(x any) bool {
			for _, want := range t.Values {
				if Equal(x, want) {
					return true
				}
			}
			return false
		})
	case Exists:
		v, ok, fanned := resolve(doc, strings.Split(t.Field, "."))
		present := ok && v != nil
		if fanned {
			// a path through an array exists when some element carries it
			present = anyElement(v, func(x any) bool { return x != nil })
		}
		return present == t.Exists
	case Overlaps:
		v, ok := Get(doc, t.Field)
		if !ok {
			return false
		}
		return anyElement(v, func(x any) bool {
			for _, want := range t.Values {
				if Equal(x, want) {
					return true
				}
			}
			return false
		})
	case Contains:
		v, ok := Get(doc, t.Field)
		if !ok {
			return false
		}
		needle := strings.ToLower(t.Substring)
		return anyElement(v, func(x any) bool {
			s, isStr := x.(string)
			return isStr && strings.Contains(strings.ToLower(s), needle)
		})
	case And:
		for _, c := range t {
			if !Eval(c, doc) {
				return false
			}
		}
		return true
	case Or:
		for _, c := range t {
			if Eval(c, doc) {
				return true
			}
		}
		return false
	case Not:
		return !Eval(t.Expr, doc)
	}
	return false
}

// anyElement applies fn to v, or to each element when v is an array
// (nested arrays are flattened)
func anyElement(v any, fn func(any) bool) bool {
	arr, ok := Normalize(v).([]any)
	if !ok {
		return fn(Normalize(v))
	}
	for _, e := range arr {
		if anyElement(e, fn) {
			return true
		}
	}
	return false
}
