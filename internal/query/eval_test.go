package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type privacy string

func samplePost() Document {
	return Document{
		"id":                    "p1",
		"privacy":               "Public",
		"supplier_id":           "c1",
		"recipient_company_ids": []any{"c2", "c3"},
		"is_draft":              false,
		"brief_id":              nil,
		"title":                 "Spring Campaign Launch",
		"score":                 float64(4),
		"ratings": []any{
			map[string]any{"user_id": "u1", "organization": map[string]any{"id": "o1"}},
			map[string]any{"user_id": "u2", "organization": map[string]any{"id": "o2"}},
		},
	}
}

func TestEval(t *testing.T) {
	doc := samplePost()

	t.Run("eq scalar", func(t *testing.T) {
		assert.True(t, Eval(Eq{Field: "privacy", Value: "Public"}, doc))
		assert.False(t, Eval(Eq{Field: "privacy", Value: "My Organization"}, doc))
	})

	t.Run("eq normalizes named strings and numbers", func(t *testing.T) {
		assert.True(t, Eval(Eq{Field: "privacy", Value: privacy("Public")}, doc))
		assert.True(t, Eval(Eq{Field: "score", Value: 4}, doc))
		assert.True(t, Eval(Eq{Field: "is_draft", Value: false}, doc))
	})

	t.Run("eq matches any array element", func(t *testing.T) {
		assert.True(t, Eval(Eq{Field: "recipient_company_ids", Value: "c3"}, doc))
		assert.True(t, Eval(Eq{Field: "ratings.user_id", Value: "u2"}, doc))
		assert.True(t, Eval(Eq{Field: "ratings.organization.id", Value: "o1"}, doc))
		assert.False(t, Eval(Eq{Field: "ratings.user_id", Value: "u9"}, doc))
	})

	t.Run("eq nil matches missing and null", func(t *testing.T) {
		assert.True(t, Eval(Eq{Field: "brief_id", Value: nil}, doc))
		assert.True(t, Eval(Eq{Field: "nope", Value: nil}, doc))
		assert.False(t, Eval(Eq{Field: "privacy", Value: nil}, doc))
	})

	t.Run("in", func(t *testing.T) {
		assert.True(t, Eval(In{Field: "supplier_id", Values: []any{"c9", "c1"}}, doc))
		assert.False(t, Eval(In{Field: "supplier_id", Values: []any{"c9"}}, doc))
		assert.False(t, Eval(In{Field: "supplier_id", Values: nil}, doc))
		assert.False(t, Eval(In{Field: "missing", Values: []any{"c1"}}, doc))
	})

	t.Run("in with uuids", func(t *testing.T) {
		id := uuid.New()
		d := Document{"supplier_id": id.String()}
		assert.True(t, Eval(In{Field: "supplier_id", Values: UUIDs([]uuid.UUID{uuid.New(), id})}, d))
		assert.True(t, Eval(Eq{Field: "supplier_id", Value: id}, d))
	})

	t.Run("exists", func(t *testing.T) {
		assert.True(t, Eval(Exists{Field: "privacy", Exists: true}, doc))
		assert.True(t, Eval(Exists{Field: "brief_id", Exists: false}, doc))
		assert.True(t, Eval(Exists{Field: "missing", Exists: false}, doc))
		assert.True(t, Eval(Exists{Field: "ratings.user_id", Exists: true}, doc))
		assert.True(t, Eval(Exists{Field: "ratings.comment", Exists: false}, doc))
		assert.True(t, Eval(Exists{Field: "tags", Exists: true}, Document{"tags": []any{}}))
	})

	t.Run("overlaps", func(t *testing.T) {
		assert.True(t, Eval(Overlaps{Field: "recipient_company_ids", Values: []any{"c0", "c2"}}, doc))
		assert.False(t, Eval(Overlaps{Field: "recipient_company_ids", Values: []any{"c0"}}, doc))
		assert.False(t, Eval(Overlaps{Field: "recipient_company_ids", Values: nil}, doc))
		assert.False(t, Eval(Overlaps{Field: "recipient_company_ids", Values: []any{"c2"}}, Document{"recipient_company_ids": nil}))
	})

	t.Run("contains is case insensitive", func(t *testing.T) {
		assert.True(t, Eval(Contains{Field: "title", Substring: "campaign"}, doc))
		assert.True(t, Eval(Contains{Field: "title", Substring: "SPRING"}, doc))
		assert.False(t, Eval(Contains{Field: "title", Substring: "autumn"}, doc))
		assert.False(t, Eval(Contains{Field: "score", Substring: "4"}, doc))
	})

	t.Run("combinators", func(t *testing.T) {
		assert.True(t, Eval(And{}, doc))
		assert.False(t, Eval(Or{}, doc))
		assert.True(t, Eval(nil, doc))
		assert.True(t, Eval(And{Eq{Field: "privacy", Value: "Public"}, Eq{Field: "is_draft", Value: false}}, doc))
		assert.False(t, Eval(And{Eq{Field: "privacy", Value: "Public"}, Eq{Field: "is_draft", Value: true}}, doc))
		assert.True(t, Eval(Or{Eq{Field: "privacy", Value: "x"}, Eq{Field: "supplier_id", Value: "c1"}}, doc))
		assert.True(t, Eval(Not{Expr: Eq{Field: "privacy", Value: "x"}}, doc))
	})
}

func TestFields(t *testing.T) {
	e := And{
		Or{Eq{Field: "privacy", Value: "Public"}, In{Field: "supplier_id", Values: []any{"c1"}}},
		Eq{Field: "is_draft", Value: false},
		Not{Expr: Exists{Field: "brief_id", Exists: true}},
		Eq{Field: "privacy", Value: "x"},
	}
	assert.Equal(t, []string{"privacy", "supplier_id", "is_draft", "brief_id"}, Fields(e))
}

func TestDocumentPaths(t *testing.T) {
	doc := Document{}
	Set(doc, "ratings.organization.name", "Acme")
	v, ok := Get(doc, "ratings.organization.name")
	assert.True(t, ok)
	assert.Equal(t, "Acme", v)

	Unset(doc, "ratings.organization.name")
	_, ok = Get(doc, "ratings.organization.name")
	assert.False(t, ok)

	Unset(doc, "does.not.exist")

	original := Document{"nested": map[string]any{"list": []any{"a"}}}
	copied := Clone(original).(map[string]any)
	Set(copied, "nested.list", []any{"b"})
	assert.Equal(t, []any{"a"}, original["nested"].(map[string]any)["list"])
}
