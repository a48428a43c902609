package models

// Privacy controls which viewers may see a post
type Privacy string

const (
	PrivacyMyOrganization    Privacy = "My Organization"
	PrivacyPotentialClients  Privacy = "Potential Clients"
	PrivacyPublic            Privacy = "Public"
	PrivacyAllCompanies      Privacy = "All Companies" // legacy spelling of Public
	PrivacySelectedCompanies Privacy = "Selected Companies"
)

// IsValid checks if the Privacy is valid
func (p Privacy) IsValid() bool {
	switch p {
	case PrivacyMyOrganization, PrivacyPotentialClients, PrivacyPublic, PrivacyAllCompanies, PrivacySelectedCompanies:
		return true
	}
	return false
}

// IsPublic reports whether the value is one of the two spellings of public
func (p Privacy) IsPublic() bool {
	return p == PrivacyPublic || p == PrivacyAllCompanies
}

// Role is the platform role of a user
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStandard
}

// LookupKind names a family of reference values
type LookupKind string

const (
	LookupKindSkill         LookupKind = "skill"
	LookupKindSegment       LookupKind = "segment"
	LookupKindCertification LookupKind = "certification"
	LookupKindRegion        LookupKind = "region"
	LookupKindProduct       LookupKind = "product"
	LookupKindJobTitle      LookupKind = "job_title"
	LookupKindDepartment    LookupKind = "department"
	LookupKindCountry       LookupKind = "country"
	LookupKindCity          LookupKind = "city"
)

// IsValid checks if the LookupKind is valid
func (k LookupKind) IsValid() bool {
	switch k {
	case LookupKindSkill, LookupKindSegment, LookupKindCertification, LookupKindRegion, LookupKindProduct,
		LookupKindJobTitle, LookupKindDepartment, LookupKindCountry, LookupKindCity:
		return true
	}
	return false
}

// NotificationKind classifies notifications
type NotificationKind string

const (
	NotificationKindPostShared      NotificationKind = "post_shared"
	NotificationKindRelationCreated NotificationKind = "relation_created"
)
