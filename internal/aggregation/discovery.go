package aggregation

import (
	"fmt"
	"strings"

	"xgrowth-backend/internal/pipeline"
	"xgrowth-backend/internal/query"

	"github.com/google/uuid"
)

// DiscoveryParams narrows the organization directory. Zero values are ignored.
type DiscoveryParams struct {
	Search             string
	OrganizationTypeID uuid.UUID
	SkillIDs           []string
	SegmentIDs         []string
	CertificationIDs   []string
	RegionIDs          []string
	ProductIDs         []string
	Sort               string
	Page               int
	PageSize           int
}

// DiscoveryFilter is the match part of the discovery pipeline, shared with counting
func DiscoveryFilter(params DiscoveryParams) query.Expr {
	conds := query.And{}
	if s := strings.TrimSpace(params.Search); s != "" {
		conds = append(conds, query.Contains{Field: "name", Substring: s})
	}
	if params.OrganizationTypeID != uuid.Nil {
		conds = append(conds, query.Eq{Field: "organization_type_id", Value: params.OrganizationTypeID.String()})
	}
	overlaps := []struct {
		field string
		ids   []string
	}{
		{"skill_ids", params.SkillIDs},
		{"segment_ids", params.SegmentIDs},
		{"certification_ids", params.CertificationIDs},
		{"region_ids", params.RegionIDs},
		{"product_ids", params.ProductIDs},
	}
	for _, o := range overlaps {
		if len(o.ids) > 0 {
			conds = append(conds, query.Overlaps{Field: o.field, Values: query.Strings(o.ids)})
		}
	}
	return conds
}

// OrganizationDiscovery builds the organization directory listing
func OrganizationDiscovery(params DiscoveryParams) (pipeline.Pipeline, error) {
	if params.Page < 0 || params.PageSize < 0 {
		return nil, fmt.Errorf("%w: page and page size must not be negative", pipeline.ErrInvalidPipeline)
	}

	skip, limit := Pagination(params.Page, params.PageSize)

	p := pipeline.Pipeline{
		pipeline.Match{Filter: DiscoveryFilter(params)},
		SortStage(params.Sort),
		pipeline.Skip{N: skip},
	}
	if limit > 0 {
		p = append(p, pipeline.Limit{N: limit})
	}
	p = append(p,
		pipeline.Lookup{From: CollectionOrganizationTypes, LocalField: "organization_type_id", ForeignField: "id", As: "organization_type"},
		pipeline.Unwind{Path: "organization_type", PreserveEmpty: true},
		pipeline.Lookup{From: CollectionLookupValues, LocalField: "skill_ids", ForeignField: "id", As: "skills"},
		pipeline.Lookup{From: CollectionLookupValues, LocalField: "segment_ids", ForeignField: "id", As: "segments"},
		pipeline.Lookup{From: CollectionLookupValues, LocalField: "certification_ids", ForeignField: "id", As: "certifications"},
		pipeline.Lookup{From: CollectionLookupValues, LocalField: "region_ids", ForeignField: "id", As: "reach"},
		pipeline.Lookup{From: CollectionLookupValues, LocalField: "product_ids", ForeignField: "id", As: "products"},
	)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
