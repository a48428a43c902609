package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"xgrowth-backend/internal/query"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Source resolves lookups: documents of collection whose field equals one of values
type Source interface {
	Find(ctx context.Context, collection, field string, values []any) ([]query.Document, error)
}

// Run evaluates p over docs in memory. Lookups go to src once per stage.
// Input documents are not modified.
func Run(ctx context.Context, p Pipeline, docs []query.Document, src Source) ([]query.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cur := make([]query.Document, len(docs))
	for i, d := range docs {
		cur[i] = query.Clone(d).(map[string]any)
	}

	for i, s := range p {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		switch t := s.(type) {
		case Match:
			cur = runMatch(t, cur)
		case Lookup:
			cur, err = runLookup(ctx, t, cur, src)
		case Unwind:
			cur = runUnwind(t, cur)
		case Group:
			cur = runGroup(t, cur)
		case Sort:
			cur = runSort(t, cur)
		case Skip:
			if t.N >= len(cur) {
				cur = cur[:0]
			} else {
				cur = cur[t.N:]
			}
		case Limit:
			if t.N < len(cur) {
				cur = cur[:t.N]
			}
		case Set:
			runSet(t, cur)
		case Unset:
			for _, d := range cur {
				for _, f := range t.Fields {
					query.Unset(d, f)
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.Name(), err)
		}
	}
	return cur, nil
}

func runMatch(m Match, docs []query.Document) []query.Document {
	out := docs[:0:0]
	for _, d := range docs {
		if query.Eval(m.Filter, d) {
			out = append(out, d)
		}
	}
	return out
}

func runLookup(ctx context.Context, l Lookup, docs []query.Document, src Source) ([]query.Document, error) {
	var values []any
	seen := map[string]bool{}
	for _, d := range docs {
		for _, v := range scalars(Field(l.LocalField).Eval(d)) {
			if v == nil {
				continue
			}
			k := query.Key(v)
			if !seen[k] {
				seen[k] = true
				values = append(values, v)
			}
		}
	}

	var foreign []query.Document
	if len(values) > 0 {
		if src == nil {
			return nil, fmt.Errorf("no source for lookup on %s", l.From)
		}
		var err error
		foreign, err = src.Find(ctx, l.From, l.ForeignField, values)
		if err != nil {
			return nil, err
		}
	}

	index := map[string][]int{}
	for i, f := range foreign {
		for _, v := range scalars(Field(l.ForeignField).Eval(f)) {
			k := query.Key(v)
			index[k] = append(index[k], i)
		}
	}

	for _, d := range docs {
		if !parentExists(d, l.As) {
			continue
		}
		matched := []any{}
		used := map[int]bool{}
		for _, v := range scalars(Field(l.LocalField).Eval(d)) {
			if v == nil {
				continue
			}
			for _, i := range index[query.Key(v)] {
				if !used[i] {
					used[i] = true
					matched = append(matched, query.Clone(foreign[i]))
				}
			}
		}
		query.Set(d, l.As, matched)
	}
	return docs, nil
}

func runUnwind(u Unwind, docs []query.Document) []query.Document {
	out := make([]query.Document, 0, len(docs))
	for _, d := range docs {
		v, ok := query.Get(d, u.Path)
		arr, isArr := v.([]any)
		switch {
		case ok && isArr && len(arr) > 0:
			for _, elem := range arr {
				c := query.Clone(d).(map[string]any)
				query.Set(c, u.Path, query.Clone(elem))
				out = append(out, c)
			}
		case ok && v != nil && !isArr:
			out = append(out, d)
		case u.PreserveEmpty:
			if ok && isArr {
				query.Unset(d, u.Path)
			}
			out = append(out, d)
		}
	}
	return out
}

func runGroup(g Group, docs []query.Document) []query.Document {
	type bucket struct {
		key  any
		docs []query.Document
	}
	var order []string
	buckets := map[string]*bucket{}
	for _, d := range docs {
		key := Field(g.By).Eval(d)
		k := query.Key(key)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{key: key}
			buckets[k] = b
			order = append(order, k)
		}
		b.docs = append(b.docs, d)
	}

	out := make([]query.Document, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		res := query.Document{}
		query.Set(res, g.By, b.key)
		for _, f := range g.Fields {
			switch f.Op {
			case First:
				if v, ok := present(f.Value, b.docs[0]); ok {
					res[f.Name] = v
				}
			case Push:
				items := []any{}
				for _, d := range b.docs {
					if v, ok := present(f.Value, d); ok {
						items = append(items, v)
					}
				}
				res[f.Name] = items
			case Sum:
				var total float64
				for _, d := range b.docs {
					if n, ok := query.Normalize(f.Value.Eval(d)).(float64); ok {
						total += n
					}
				}
				res[f.Name] = total
			case Count:
				res[f.Name] = float64(len(b.docs))
			}
		}
		out = append(out, res)
	}
	return out
}

// present evaluates v, reporting false for a missing field so accumulators can skip it
func present(v Value, d query.Document) (any, bool) {
	if f, ok := v.(Field); ok {
		r, found := query.Get(d, string(f))
		return r, found
	}
	return v.Eval(d), true
}

func runSort(s Sort, docs []query.Document) []query.Document {
	var col *collate.Collator
	for _, k := range s.Keys {
		if k.Collated {
			col = collate.New(language.Und, collate.IgnoreCase)
			break
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, k := range s.Keys {
			var kc *collate.Collator
			if k.Collated {
				kc = col
			}
			c := compareValues(Field(k.Field).Eval(docs[i]), Field(k.Field).Eval(docs[j]), kc)
			if c == 0 {
				continue
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return docs
}

func runSet(s Set, docs []query.Document) {
	for _, d := range docs {
		results := make([]any, len(s.Fields))
		for i, a := range s.Fields {
			results[i] = a.Value.Eval(d)
		}
		for i, a := range s.Fields {
			if _, remove := results[i].(removeValue); remove {
				query.Unset(d, a.Path)
				continue
			}
			query.Set(d, a.Path, results[i])
		}
	}
}

// parentExists reports whether the document holding the last segment of path
// exists, so joins into an unwound-away sub-document are skipped
func parentExists(d query.Document, path string) bool {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return true
	}
	v, ok := query.Get(d, path[:i])
	_, isDoc := v.(map[string]any)
	return ok && isDoc
}

// scalars flattens arrays so lookups can match any element
func scalars(v any) []any {
	arr, ok := v.([]any)
	if !ok {
		return []any{v}
	}
	var out []any
	for _, e := range arr {
		out = append(out, scalars(e)...)
	}
	return out
}

// compareValues orders nil < numbers < strings < bools. Strings that parse as
// RFC 3339 timestamps compare as times.
func compareValues(a, b any, col *collate.Collator) int {
	a, b = query.Normalize(a), query.Normalize(b)
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch x := a.(type) {
	case float64:
		y := b.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case string:
		y := b.(string)
		if ta, err := time.Parse(time.RFC3339Nano, x); err == nil {
			if tb, err := time.Parse(time.RFC3339Nano, y); err == nil {
				return ta.Compare(tb)
			}
		}
		if col != nil {
			return col.CompareString(x, y)
		}
		return strings.Compare(x, y)
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}
	return 0
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case float64:
		return 1
	case string:
		return 2
	case bool:
		return 3
	}
	return 4
}
