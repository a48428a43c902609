package auth

import (
	"xgrowth-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "principal"

// Principal is the authenticated caller as seen by services. Nil ids mean
// the user has no company or organization.
type Principal struct {
	UserID         uuid.UUID   `json:"user_id"`
	Email          string      `json:"email"`
	Role           models.Role `json:"role"`
	CompanyID      uuid.UUID   `json:"company_id"`
	OrganizationID uuid.UUID   `json:"organization_id"`
}

// PrincipalFromUser builds a principal from a stored user
func PrincipalFromUser(u *models.User) Principal {
	p := Principal{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
	if u.CompanyID != nil {
		p.CompanyID = *u.CompanyID
	}
	if u.OrganizationID != nil {
		p.OrganizationID = *u.OrganizationID
	}
	return p
}

// IsAdmin reports whether the caller holds the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// HasOrganization reports whether the caller belongs to an organization
func (p Principal) HasOrganization() bool {
	return p.OrganizationID != uuid.Nil
}

// SetPrincipal stores the principal on the gin context
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.UserID)
	c.Set("email", p.Email)
	c.Set("role", string(p.Role))
}

// GetPrincipal is a helper function to extract the principal from context
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
