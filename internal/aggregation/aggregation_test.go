package aggregation

import (
	"context"
	"math"
	"testing"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/pipeline"
	"xgrowth-backend/internal/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySource map[string][]query.Document

func (m memorySource) Find(_ context.Context, collection, field string, values []any) ([]query.Document, error) {
	var out []query.Document
	for _, d := range m[collection] {
		if query.Eval(query.In{Field: field, Values: values}, d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// detailFixture is a post owned by ownerOrg, rated by the viewer's
// organization, the owner's organization and an unrelated third one.
type detailFixture struct {
	viewer   auth.Principal
	postID   uuid.UUID
	creator  uuid.UUID
	ownerOrg uuid.UUID
	thirdOrg uuid.UUID
	src      memorySource
	posts    []query.Document
}

func newDetailFixture(withRatings bool) *detailFixture {
	f := &detailFixture{
		viewer: auth.Principal{
			UserID:         uuid.New(),
			Role:           models.RoleStandard,
			CompanyID:      uuid.New(),
			OrganizationID: uuid.New(),
		},
		postID:   uuid.New(),
		creator:  uuid.New(),
		ownerOrg: uuid.New(),
		thirdOrg: uuid.New(),
	}
	supplier := uuid.New().String()
	category := uuid.New().String()

	f.posts = []query.Document{
		{
			"id":                    f.postID.String(),
			"title":                 "Spring promo",
			"supplier_id":           supplier,
			"created_by_id":         f.creator.String(),
			"category_ids":          []any{category},
			"recipient_company_ids": []any{},
			"brief_id":              nil,
			"privacy":               string(models.PrivacyPublic),
		},
		{"id": uuid.New().String(), "title": "other"},
	}
	f.src = memorySource{
		CollectionCompanies: {
			{"id": supplier, "name": "Acme Foods", "organization_id": f.ownerOrg.String()},
		},
		CollectionOrganizations: {
			{"id": f.ownerOrg.String(), "name": "Acme", "logo": "acme.png"},
			{"id": f.viewer.OrganizationID.String(), "name": "Viewer Org", "logo": "viewer.png"},
			{"id": f.thirdOrg.String(), "name": "Rival", "logo": "rival.png"},
		},
		CollectionCategories: {{"id": category, "name": "Beverages"}},
		CollectionUsers:      {{"id": f.creator.String(), "email": "creator@acme.com"}},
		CollectionPostPins: {
			{"id": uuid.New().String(), "post_id": f.postID.String(), "user_id": f.viewer.UserID.String()},
			{"id": uuid.New().String(), "post_id": f.postID.String(), "user_id": uuid.New().String()},
		},
	}
	if withRatings {
		f.src[CollectionPostRatings] = []query.Document{
			{"id": "r1", "post_id": f.postID.String(), "user_id": uuid.New().String(), "organization_id": f.viewer.OrganizationID.String(), "score": float64(5)},
			{"id": "r2", "post_id": f.postID.String(), "user_id": uuid.New().String(), "organization_id": f.ownerOrg.String(), "score": float64(4)},
			{"id": "r3", "post_id": f.postID.String(), "user_id": uuid.New().String(), "organization_id": f.thirdOrg.String(), "score": float64(2)},
		}
	}
	return f
}

func (f *detailFixture) run(t *testing.T, principal auth.Principal) query.Document {
	t.Helper()
	p, err := PostDetail(principal, f.postID)
	require.NoError(t, err)
	out, err := pipeline.Run(context.Background(), p, f.posts, f.src)
	require.NoError(t, err)
	require.Len(t, out, 1)
	return out[0]
}

func TestPostDetailShape(t *testing.T) {
	p, err := PostDetail(auth.Principal{UserID: uuid.New()}, uuid.New())
	require.NoError(t, err)

	names := p.Names()
	assert.Equal(t, "match", names[0])
	assert.Equal(t, "unset", names[len(names)-1])

	var group pipeline.Group
	groups := 0
	for _, s := range p {
		if g, ok := s.(pipeline.Group); ok {
			group = g
			groups++
		}
	}
	require.Equal(t, 1, groups)
	assert.Equal(t, "id", group.By)
	last := group.Fields[len(group.Fields)-1]
	assert.Equal(t, "ratings", last.Name)
	assert.Equal(t, pipeline.Push, last.Op)

	t.Run("nil post id", func(t *testing.T) {
		_, err := PostDetail(auth.Principal{}, uuid.Nil)
		assert.ErrorIs(t, err, pipeline.ErrInvalidPipeline)
	})
}

func TestPostDetailRedaction(t *testing.T) {
	f := newDetailFixture(true)
	doc := f.run(t, f.viewer)

	assert.Equal(t, true, doc["has_ratings"])
	ratings, ok := doc["ratings"].([]any)
	require.True(t, ok)
	require.Len(t, ratings, 3)

	byID := map[string]map[string]any{}
	for _, r := range ratings {
		rd := r.(map[string]any)
		byID[rd["id"].(string)] = rd["organization"].(map[string]any)
	}

	assert.Equal(t, "Viewer Org", byID["r1"]["name"])
	assert.Equal(t, false, byID["r1"]["restricted"])
	assert.Equal(t, "Acme", byID["r2"]["name"])
	assert.Equal(t, false, byID["r2"]["restricted"])
	assert.Equal(t, RestrictedOrganizationName, byID["r3"]["name"])
	assert.Equal(t, RestrictedOrganizationLogo, byID["r3"]["logo"])
	assert.Equal(t, true, byID["r3"]["restricted"])
}

func TestPostDetailWithoutRatings(t *testing.T) {
	f := newDetailFixture(false)
	doc := f.run(t, f.viewer)

	assert.Equal(t, false, doc["has_ratings"])
	_, present := doc["ratings"]
	assert.False(t, present, "ratings must be omitted, not empty")

	assert.Equal(t, "Spring promo", doc["title"])
	assert.Equal(t, "Acme Foods", doc["supplier"].(map[string]any)["name"])
	assert.Equal(t, "Acme", doc["organization"].(map[string]any)["name"])
	assert.Len(t, doc["categories"], 1)
	assert.Equal(t, float64(2), doc["pin_count"])
	assert.Equal(t, true, doc["is_pinned"])
	_, pins := doc["pins"]
	assert.False(t, pins)
	_, brief := doc["brief"]
	assert.False(t, brief)
}

func TestPostDetailPermissions(t *testing.T) {
	f := newDetailFixture(false)

	t.Run("other organization may rate", func(t *testing.T) {
		doc := f.run(t, f.viewer)
		assert.Equal(t, true, doc["can_rate"])
		assert.Equal(t, false, doc["can_edit"])
		assert.Equal(t, false, doc["can_delete"])
		assert.Equal(t, false, doc["can_answer"])
	})

	t.Run("creator cannot rate own post", func(t *testing.T) {
		creator := auth.Principal{UserID: f.creator, OrganizationID: f.ownerOrg, Role: models.RoleStandard}
		doc := f.run(t, creator)
		assert.Equal(t, false, doc["can_rate"])
		assert.Equal(t, true, doc["can_edit"])
		assert.Equal(t, true, doc["can_delete"])
		assert.Equal(t, true, doc["can_answer"])
	})

	t.Run("admin may edit", func(t *testing.T) {
		admin := f.viewer
		admin.Role = models.RoleAdmin
		doc := f.run(t, admin)
		assert.Equal(t, true, doc["can_edit"])
		assert.Equal(t, false, doc["can_answer"])
	})

	t.Run("user who rated cannot rate again", func(t *testing.T) {
		g := newDetailFixture(true)
		rater := auth.Principal{
			UserID:         uuid.MustParse(g.src[CollectionPostRatings][2]["user_id"].(string)),
			OrganizationID: g.thirdOrg,
		}
		doc := g.run(t, rater)
		assert.Equal(t, false, doc["can_rate"])
	})
}

func TestOrganizationDiscovery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		p, err := OrganizationDiscovery(DiscoveryParams{})
		require.NoError(t, err)

		match := p[0].(pipeline.Match)
		assert.Equal(t, query.And{}, match.Filter)
		assert.Equal(t, SortStage(SortNameAsc), p[1])
		assert.Equal(t, pipeline.Skip{N: 0}, p[2])
		assert.Equal(t, "lookup", p[3].Name(), "no limit without a page size")
	})

	t.Run("all filters", func(t *testing.T) {
		typeID := uuid.New()
		p, err := OrganizationDiscovery(DiscoveryParams{
			Search:             "  acme ",
			OrganizationTypeID: typeID,
			SkillIDs:           []string{"s1"},
			RegionIDs:          []string{"r1", "r2"},
			Page:               3,
			PageSize:           10,
		})
		require.NoError(t, err)

		assert.Equal(t, query.And{
			query.Contains{Field: "name", Substring: "acme"},
			query.Eq{Field: "organization_type_id", Value: typeID.String()},
			query.Overlaps{Field: "skill_ids", Values: []any{"s1"}},
			query.Overlaps{Field: "region_ids", Values: []any{"r1", "r2"}},
		}, p[0].(pipeline.Match).Filter)
		assert.Equal(t, pipeline.Skip{N: 20}, p[2])
		assert.Equal(t, pipeline.Limit{N: 10}, p[3])

		var as []string
		for _, s := range p {
			if l, ok := s.(pipeline.Lookup); ok {
				as = append(as, l.As)
			}
		}
		assert.Equal(t, []string{"organization_type", "skills", "segments", "certifications", "reach", "products"}, as)
	})

	t.Run("negative page size", func(t *testing.T) {
		_, err := OrganizationDiscovery(DiscoveryParams{PageSize: -1})
		assert.ErrorIs(t, err, pipeline.ErrInvalidPipeline)
	})

	t.Run("runs against documents", func(t *testing.T) {
		skill := uuid.New().String()
		orgs := []query.Document{
			{"id": "1", "name": "beta", "skill_ids": []any{skill}},
			{"id": "2", "name": "Alpha", "skill_ids": []any{skill}},
			{"id": "3", "name": "gamma", "skill_ids": []any{}},
		}
		src := memorySource{CollectionLookupValues: {{"id": skill, "kind": "skill", "name": "Logistics"}}}

		p, err := OrganizationDiscovery(DiscoveryParams{SkillIDs: []string{skill}})
		require.NoError(t, err)
		out, err := pipeline.Run(context.Background(), p, orgs, src)
		require.NoError(t, err)

		require.Len(t, out, 2)
		assert.Equal(t, "Alpha", out[0]["name"])
		assert.Equal(t, "beta", out[1]["name"])
		assert.Len(t, out[0]["skills"], 1)
	})
}

func TestSortStage(t *testing.T) {
	assert.Equal(t, SortStage(SortNameAsc), SortStage(""))
	assert.Equal(t, SortStage(SortNameAsc), SortStage("bogus"))
	assert.True(t, SortStage(SortNameDesc).Keys[0].Desc)
	assert.Equal(t, "post_count", SortStage(SortPosts).Keys[0].Field)
	assert.Equal(t, "created_at", SortStage(SortRecent).Keys[0].Field)
	assert.False(t, SortStage(SortRecent).Keys[0].Collated)
}

func TestPagination(t *testing.T) {
	tests := []struct {
		page, size, skip, limit int
	}{
		{1, 20, 0, 20},
		{3, 10, 20, 10},
		{0, 10, 0, 10},
		{-2, 10, 0, 10},
		{2, 0, 0, 0},
		{math.MaxInt, 1, math.MaxInt - 1, 1},
	}
	for _, tt := range tests {
		skip, limit := Pagination(tt.page, tt.size)
		assert.Equal(t, tt.skip, skip, "page %d size %d", tt.page, tt.size)
		assert.Equal(t, tt.limit, limit)
	}

	t.Run("non numeric input is unset", func(t *testing.T) {
		page, size := ParsePagination("abc", "")
		assert.Equal(t, 0, page)
		assert.Equal(t, 0, size)

		page, size = ParsePagination("2", "15")
		assert.Equal(t, 2, page)
		assert.Equal(t, 15, size)
	})

	t.Run("huge page does not wrap", func(t *testing.T) {
		page, size := ParsePagination("9223372036854775807", "20")
		skip, limit := Pagination(page, size)
		assert.GreaterOrEqual(t, skip, 0)
		assert.Equal(t, 20, limit)
		assert.Zero(t, skip%20)

		p, err := OrganizationDiscovery(DiscoveryParams{Page: page, PageSize: size})
		require.NoError(t, err)
		assert.Equal(t, pipeline.Skip{N: skip}, p[2])
	})
}
