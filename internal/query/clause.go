package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm/clause"
)

// ErrUnsupportedField is returned when a field cannot be addressed as a column
var ErrUnsupportedField = errors.New("field is not a column")

var (
	sqlTrue  = clause.Expr{SQL: "TRUE"}
	sqlFalse = clause.Expr{SQL: "FALSE"}
)

// ToClause compiles e into a gorm clause expression for Postgres. Fields must
// be plain column names; dotted paths only exist in memory.
func ToClause(e Expr) (clause.Expression, error) {
	switch t := e.(type) {
	case nil:
		return sqlTrue, nil
	case Eq:
		col, err := column(t.Field)
		if err != nil {
			return nil, err
		}
		if t.Value == nil {
			return clause.Expr{SQL: "? IS NULL", Vars: []interface{}{col}}, nil
		}
		return clause.Eq{Column: col, Value: t.Value}, nil
	case In:
		col, err := column(t.Field)
		if err != nil {
			return nil, err
		}
		if len(t.Values) == 0 {
			return sqlFalse, nil
		}
		return clause.IN{Column: col, Values: t.Values}, nil
	case Exists:
		col, err := column(t.Field)
		if err != nil {
			return nil, err
		}
		if t.Exists {
			return clause.Expr{SQL: "? IS NOT NULL", Vars: []interface{}{col}}, nil
		}
		return clause.Expr{SQL: "? IS NULL", Vars: []interface{}{col}}, nil
	case Overlaps:
		col, err := column(t.Field)
		if err != nil {
			return nil, err
		}
		if len(t.Values) == 0 {
			return sqlFalse, nil
		}
		return clause.Expr{SQL: "? && ?::text[]", Vars: []interface{}{col, textArray(t.Values)}}, nil
	case Contains:
		col, err := column(t.Field)
		if err != nil {
			return nil, err
		}
		return clause.Expr{SQL: "? ILIKE ?", Vars: []interface{}{col, "%" + escapeLike(t.Substring) + "%"}}, nil
	case And:
		if len(t) == 0 {
			return sqlTrue, nil
		}
		exprs, err := compileAll(t)
		if err != nil {
			return nil, err
		}
		return clause.And(exprs...), nil
	case Or:
		if len(t) == 0 {
			return sqlFalse, nil
		}
		exprs, err := compileAll(t)
		if err != nil {
			return nil, err
		}
		return clause.Or(exprs...), nil
	case Not:
		inner, err := ToClause(t.Expr)
		if err != nil {
			return nil, err
		}
		return clause.Not(inner), nil
	}
	return nil, fmt.Errorf("unsupported expression %T", e)
}

func compileAll(exprs []Expr) ([]clause.Expression, error) {
	out := make([]clause.Expression, 0, len(exprs))
	for _, e := range exprs {
		c, err := ToClause(e)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func column(field string) (clause.Column, error) {
	if field == "" || strings.Contains(field, ".") {
		return clause.Column{}, fmt.Errorf("%w: %q", ErrUnsupportedField, field)
	}
	return clause.Column{Name: field}, nil
}

func textArray(values []any) pq.StringArray {
	out := make(pq.StringArray, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(Normalize(v))
	}
	return out
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
