package service

import (
	"errors"
	"fmt"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisibilityOptions adjusts a visibility filter
type VisibilityOptions struct {
	// Extra is ANDed onto the filter
	Extra query.Expr
	// IncludeBriefPosts keeps posts answering a brief
	IncludeBriefPosts bool
}

// VisibilityFilterBuilder builds the filter selecting the posts a principal
// may read. Resolution failures fail the build; there is no unrestricted fallback.
type VisibilityFilterBuilder struct {
	orgs      repository.OrganizationRepositoryInterface
	orgTypes  repository.OrganizationTypeRepositoryInterface
	companies repository.CompanyRepositoryInterface
	resolver  RelationshipResolverInterface
}

// NewVisibilityFilterBuilder creates a new visibility filter builder
func NewVisibilityFilterBuilder(
	orgs repository.OrganizationRepositoryInterface,
	orgTypes repository.OrganizationTypeRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	resolver RelationshipResolverInterface,
) *VisibilityFilterBuilder {
	return &VisibilityFilterBuilder{orgs: orgs, orgTypes: orgTypes, companies: companies, resolver: resolver}
}

// Build returns the post filter for principal
func (b *VisibilityFilterBuilder) Build(principal auth.Principal, opts VisibilityOptions) (query.Expr, error) {
	if !principal.HasOrganization() {
		return nil, apperrors.ErrOrganizationNotFound
	}
	org, err := b.orgs.GetByID(principal.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	seesAll, err := b.seesAllPotentialClients(org)
	if err != nil {
		return nil, err
	}

	companies, err := b.companies.GetByOrganizationID(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization companies: %w", err)
	}
	siblings := make([]uuid.UUID, len(companies))
	for i, c := range companies {
		siblings[i] = c.ID
	}
	siblingValues := query.UUIDs(siblings)

	potentialClients := query.Expr(query.Eq{Field: "privacy", Value: string(models.PrivacyPotentialClients)})
	if !seesAll {
		var related []uuid.UUID
		if principal.CompanyID != uuid.Nil {
			related, err = b.resolver.RelatedCompanies(principal.CompanyID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve related companies: %w", err)
			}
		}
		potentialClients = query.And{
			potentialClients,
			query.In{Field: "supplier_id", Values: query.UUIDs(related)},
		}
	}

	filter := query.And{
		query.Or{
			potentialClients,
			query.And{
				query.Eq{Field: "privacy", Value: string(models.PrivacyMyOrganization)},
				query.In{Field: "supplier_id", Values: siblingValues},
			},
			query.In{Field: "privacy", Values: []any{string(models.PrivacyPublic), string(models.PrivacyAllCompanies)}},
			query.And{
				query.Eq{Field: "privacy", Value: string(models.PrivacySelectedCompanies)},
				query.Overlaps{Field: "recipient_company_ids", Values: siblingValues},
			},
			query.In{Field: "supplier_id", Values: siblingValues},
		},
		query.Eq{Field: "is_draft", Value: false},
	}
	if !opts.IncludeBriefPosts {
		filter = append(filter, query.Exists{Field: "brief_id", Exists: false})
	}
	if opts.Extra != nil {
		filter = append(filter, opts.Extra)
	}
	return filter, nil
}

// seesAllPotentialClients reads the capability from the organization type.
// A dangling type reference grants nothing.
func (b *VisibilityFilterBuilder) seesAllPotentialClients(org *models.Organization) (bool, error) {
	if org.OrganizationTypeID == nil {
		return false, nil
	}
	orgType, err := b.orgTypes.GetByID(*org.OrganizationTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load organization type: %w", err)
	}
	return orgType.SeesAllPotentialClients, nil
}
