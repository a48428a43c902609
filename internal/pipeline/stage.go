// Package pipeline describes multi-stage document aggregations (match, lookup,
// unwind, group, sort, paginate, set) as plain values, and evaluates them.
package pipeline

import (
	"errors"
	"fmt"

	"xgrowth-backend/internal/query"
)

// ErrInvalidPipeline is wrapped by Validate failures
var ErrInvalidPipeline = errors.New("invalid pipeline")

// Stage is one step of a pipeline
type Stage interface {
	Name() string
}

// Pipeline is an ordered list of stages. Builders return a fresh slice; callers treat it as immutable.
type Pipeline []Stage

// Match keeps documents satisfying Filter
type Match struct {
	Filter query.Expr
}

// Lookup joins documents of From whose ForeignField equals LocalField (any
// element, for arrays) and stores them as an array under As.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
}

// Unwind emits one document per element of the array at Path. With
// PreserveEmpty a document whose array is missing or empty is kept without the field.
type Unwind struct {
	Path          string
	PreserveEmpty bool
}

// Accumulator combines a field across the documents of a group
type Accumulator string

const (
	First Accumulator = "first"
	Push  Accumulator = "push"
	Sum   Accumulator = "sum"
	Count Accumulator = "count"
)

// GroupField is one output field of a Group
type GroupField struct {
	Name  string
	Op    Accumulator
	Value Value
}

// Group collapses documents sharing the value at By. Groups keep the order of
// their first document; the key is written back under By.
type Group struct {
	By     string
	Fields []GroupField
}

// SortKey orders by one field. Collated keys compare strings case-insensitively by locale.
type SortKey struct {
	Field    string
	Desc     bool
	Collated bool
}

// Sort orders documents by Keys, stable
type Sort struct {
	Keys []SortKey
}

// Skip drops the first N documents
type Skip struct {
	N int
}

// Limit keeps at most N documents
type Limit struct {
	N int
}

// Assignment sets Path to Value; a Remove value deletes Path instead
type Assignment struct {
	Path  string
	Value Value
}

// Set adds or replaces fields. All values are computed against the incoming document.
type Set struct {
	Fields []Assignment
}

// Unset removes fields
type Unset struct {
	Fields []string
}

func (Match) Name() string  { return "match" }
func (Lookup) Name() string { return "lookup" }
func (Unwind) Name() string { return "unwind" }
func (Group) Name() string  { return "group" }
func (Sort) Name() string   { return "sort" }
func (Skip) Name() string   { return "skip" }
func (Limit) Name() string  { return "limit" }
func (Set) Name() string    { return "set" }
func (Unset) Name() string  { return "unset" }

// Names lists stage names in order
func (p Pipeline) Names() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.Name()
	}
	return out
}

// Validate checks every stage is well formed
func (p Pipeline) Validate() error {
	for i, s := range p {
		if err := validateStage(s); err != nil {
			return fmt.Errorf("%w: stage %d (%s): %v", ErrInvalidPipeline, i, nameOf(s), err)
		}
	}
	return nil
}

func nameOf(s Stage) string {
	if s == nil {
		return "nil"
	}
	return s.Name()
}

func validateStage(s Stage) error {
	switch t := s.(type) {
	case Match:
		if t.Filter == nil {
			return errors.New("filter is required")
		}
	case Lookup:
		if t.From == "" || t.LocalField == "" || t.ForeignField == "" || t.As == "" {
			return errors.New("from, local field, foreign field and as are required")
		}
	case Unwind:
		if t.Path == "" {
			return errors.New("path is required")
		}
	case Group:
		if t.By == "" {
			return errors.New("group key is required")
		}
		for _, f := range t.Fields {
			if f.Name == "" {
				return errors.New("group field name is required")
			}
			switch f.Op {
			case First, Push, Sum:
				if f.Value == nil {
					return fmt.Errorf("group field %q has no value", f.Name)
				}
			case Count:
			default:
				return fmt.Errorf("unknown accumulator %q", f.Op)
			}
		}
	case Sort:
		if len(t.Keys) == 0 {
			return errors.New("at least one sort key is required")
		}
		for _, k := range t.Keys {
			if k.Field == "" {
				return errors.New("sort field is required")
			}
		}
	case Skip:
		if t.N < 0 {
			return errors.New("skip must not be negative")
		}
	case Limit:
		if t.N < 0 {
			return errors.New("limit must not be negative")
		}
	case Set:
		for _, a := range t.Fields {
			if a.Path == "" || a.Value == nil {
				return errors.New("assignment needs a path and a value")
			}
		}
	case Unset:
		for _, f := range t.Fields {
			if f == "" {
				return errors.New("unset field is required")
			}
		}
	case nil:
		return errors.New("nil stage")
	default:
		return fmt.Errorf("unknown stage %T", s)
	}
	return nil
}
