package service

import (
	"fmt"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/repository"

	"github.com/google/uuid"
)

// RelationshipResolver answers which companies and organizations are
// connected through enabled company relations. Relations are undirected: a
// company may appear on either side.
type RelationshipResolver struct {
	relations repository.CompanyRelationRepositoryInterface
	companies repository.CompanyRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
}

// NewRelationshipResolver creates a new relationship resolver
func NewRelationshipResolver(
	relations repository.CompanyRelationRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
) *RelationshipResolver {
	return &RelationshipResolver{relations: relations, companies: companies, orgs: orgs}
}

// RelatedCompanies returns the ids of companies related to companyID, in
// first-seen order, without duplicates and never companyID itself
func (r *RelationshipResolver) RelatedCompanies(companyID uuid.UUID) ([]uuid.UUID, error) {
	relations, err := r.relations.ListActiveByCompanies([]uuid.UUID{companyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list relations: %w", err)
	}

	related := make([]uuid.UUID, 0, len(relations))
	seen := map[uuid.UUID]bool{companyID: true}
	for i := range relations {
		other, ok := relations[i].Other(companyID)
		if !ok || seen[other] {
			continue
		}
		seen[other] = true
		related = append(related, other)
	}
	return related, nil
}

// RelatedCompanyProfiles resolves RelatedCompanies to company records
func (r *RelationshipResolver) RelatedCompanyProfiles(companyID uuid.UUID) ([]models.CompanyProfile, error) {
	ids, err := r.RelatedCompanies(companyID)
	if err != nil {
		return nil, err
	}
	companies, err := r.companies.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load related companies: %w", err)
	}
	return companies, nil
}

// RelatedOrganizations returns the organizations owning a company related to
// any company of orgID. Relations between two companies of orgID do not count.
func (r *RelationshipResolver) RelatedOrganizations(orgID uuid.UUID) ([]models.Organization, error) {
	own, err := r.companies.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization companies: %w", err)
	}
	if len(own) == 0 {
		return []models.Organization{}, nil
	}

	ownIDs := make([]uuid.UUID, len(own))
	isOwn := make(map[uuid.UUID]bool, len(own))
	for i, c := range own {
		ownIDs[i] = c.ID
		isOwn[c.ID] = true
	}

	relations, err := r.relations.ListActiveByCompanies(ownIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list relations: %w", err)
	}

	var foreign []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, rel := range relations {
		for _, id := range []uuid.UUID{rel.CompanyAID, rel.CompanyBID} {
			if !isOwn[id] && !seen[id] {
				seen[id] = true
				foreign = append(foreign, id)
			}
		}
	}
	if len(foreign) == 0 {
		return []models.Organization{}, nil
	}

	companies, err := r.companies.GetByIDs(foreign)
	if err != nil {
		return nil, fmt.Errorf("failed to load related companies: %w", err)
	}

	var orgIDs []uuid.UUID
	seenOrg := map[uuid.UUID]bool{orgID: true}
	for _, c := range companies {
		if !seenOrg[c.OrganizationID] {
			seenOrg[c.OrganizationID] = true
			orgIDs = append(orgIDs, c.OrganizationID)
		}
	}
	if len(orgIDs) == 0 {
		return []models.Organization{}, nil
	}

	orgs, err := r.orgs.GetByIDs(orgIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load related organizations: %w", err)
	}
	return orgs, nil
}
