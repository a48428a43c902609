// Package aggregation assembles the read-side pipelines behind the post detail
// and organization discovery views.
package aggregation

import (
	"fmt"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/pipeline"
	"xgrowth-backend/internal/query"

	"github.com/google/uuid"
)

// Placeholders shown for rating organizations the viewer may not see
const (
	RestrictedOrganizationName = "Restricted Organization"
	RestrictedOrganizationLogo = "/static/restricted-organization.png"
)

// Collections read by the builders
const (
	CollectionPosts             = "posts"
	CollectionCompanies         = "companies"
	CollectionOrganizations     = "organizations"
	CollectionOrganizationTypes = "organization_types"
	CollectionCategories        = "categories"
	CollectionUsers             = "users"
	CollectionBriefs            = "briefs"
	CollectionPostPins          = "post_pins"
	CollectionPostRatings       = "post_ratings"
	CollectionLookupValues      = "lookup_values"
)

// postFields are carried through the ratings regroup unchanged
var postFields = []string{
	"title", "description", "created_by_id", "supplier_id", "recipient_company_ids", "brief_id",
	"privacy", "is_draft", "category_ids", "uploaded_files",
	"created_at", "created_by", "updated_at", "updated_by",
	"supplier", "organization", "categories", "recipients", "creator", "brief", "pins",
}

// PostDetail builds the single-post view for principal. Rating organizations
// other than the viewer's and the post owner's are replaced by placeholders
// row by row, before ratings are regrouped onto the post.
func PostDetail(principal auth.Principal, postID uuid.UUID) (pipeline.Pipeline, error) {
	if postID == uuid.Nil {
		return nil, fmt.Errorf("%w: post id is required", pipeline.ErrInvalidPipeline)
	}

	viewer := principal.UserID.String()
	viewerOrg := pipeline.Lit(nil)
	if principal.HasOrganization() {
		viewerOrg = pipeline.Lit(principal.OrganizationID.String())
	}

	visible := pipeline.AnyOf{
		pipeline.Equal{A: pipeline.Field("ratings.organization.id"), B: viewerOrg},
		pipeline.Equal{A: pipeline.Field("ratings.organization.id"), B: pipeline.Field("organization.id")},
	}
	redact := func(real, placeholder pipeline.Value) pipeline.Value {
		return pipeline.Cond{
			If:   pipeline.Present("ratings.organization.id"),
			Then: pipeline.Cond{If: visible, Then: real, Else: placeholder},
			Else: pipeline.Remove,
		}
	}

	group := pipeline.Group{By: "id"}
	for _, f := range postFields {
		group.Fields = append(group.Fields, pipeline.GroupField{Name: f, Op: pipeline.First, Value: pipeline.Field(f)})
	}
	group.Fields = append(group.Fields, pipeline.GroupField{Name: "ratings", Op: pipeline.Push, Value: pipeline.Field("ratings")})

	p := pipeline.Pipeline{
		pipeline.Match{Filter: query.Eq{Field: "id", Value: postID.String()}},

		pipeline.Lookup{From: CollectionCompanies, LocalField: "supplier_id", ForeignField: "id", As: "supplier"},
		pipeline.Unwind{Path: "supplier", PreserveEmpty: true},
		pipeline.Lookup{From: CollectionOrganizations, LocalField: "supplier.organization_id", ForeignField: "id", As: "organization"},
		pipeline.Unwind{Path: "organization", PreserveEmpty: true},
		pipeline.Lookup{From: CollectionCategories, LocalField: "category_ids", ForeignField: "id", As: "categories"},
		pipeline.Lookup{From: CollectionCompanies, LocalField: "recipient_company_ids", ForeignField: "id", As: "recipients"},
		pipeline.Lookup{From: CollectionUsers, LocalField: "created_by_id", ForeignField: "id", As: "creator"},
		pipeline.Unwind{Path: "creator", PreserveEmpty: true},
		pipeline.Lookup{From: CollectionBriefs, LocalField: "brief_id", ForeignField: "id", As: "brief"},
		pipeline.Unwind{Path: "brief", PreserveEmpty: true},
		pipeline.Lookup{From: CollectionPostPins, LocalField: "id", ForeignField: "post_id", As: "pins"},

		// one row per rating from here until the group
		pipeline.Lookup{From: CollectionPostRatings, LocalField: "id", ForeignField: "post_id", As: "ratings"},
		pipeline.Unwind{Path: "ratings", PreserveEmpty: true},
		pipeline.Lookup{From: CollectionOrganizations, LocalField: "ratings.organization_id", ForeignField: "id", As: "ratings.organization"},
		pipeline.Unwind{Path: "ratings.organization", PreserveEmpty: true},
		pipeline.Set{Fields: []pipeline.Assignment{
			{Path: "ratings.organization.restricted", Value: redact(pipeline.Lit(false), pipeline.Lit(true))},
			{Path: "ratings.organization.name", Value: redact(pipeline.Field("ratings.organization.name"), pipeline.Lit(RestrictedOrganizationName))},
			{Path: "ratings.organization.logo", Value: redact(pipeline.Field("ratings.organization.logo"), pipeline.Lit(RestrictedOrganizationLogo))},
		}},
		group,

		pipeline.Set{Fields: []pipeline.Assignment{
			{Path: "has_ratings", Value: pipeline.GreaterThan{A: pipeline.Size{V: pipeline.Field("ratings")}, B: pipeline.Lit(0)}},
		}},
		pipeline.Set{Fields: []pipeline.Assignment{
			{Path: "ratings", Value: pipeline.Cond{If: pipeline.Field("has_ratings"), Then: pipeline.Field("ratings"), Else: pipeline.Remove}},
			{Path: "pin_count", Value: pipeline.Size{V: pipeline.Field("pins")}},
			{Path: "is_pinned", Value: pipeline.InArray{Needle: pipeline.Lit(viewer), Haystack: pipeline.Field("pins.user_id")}},
			{Path: "can_rate", Value: pipeline.Negate{V: pipeline.AnyOf{
				pipeline.Equal{A: pipeline.Field("organization.id"), B: viewerOrg},
				pipeline.InArray{Needle: pipeline.Lit(viewer), Haystack: pipeline.Field("ratings.user_id")},
			}}},
			{Path: "can_answer", Value: pipeline.Equal{A: pipeline.Field("created_by_id"), B: pipeline.Lit(viewer)}},
			{Path: "can_delete", Value: pipeline.AnyOf{pipeline.Lit(principal.IsAdmin()), pipeline.Equal{A: pipeline.Field("created_by_id"), B: pipeline.Lit(viewer)}}},
			{Path: "can_edit", Value: pipeline.AnyOf{pipeline.Lit(principal.IsAdmin()), pipeline.Equal{A: pipeline.Field("created_by_id"), B: pipeline.Lit(viewer)}}},
		}},
		pipeline.Unset{Fields: []string{"pins"}},
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
