package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	companies repository.CompanyRepositoryInterface
	lookups   repository.LookupValueRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	lookups repository.LookupValueRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:      repo,
		companies: companies,
		lookups:   lookups,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user. When CompanyID is
// omitted the company is looked up by the email's domain.
type CreateUserRequest struct {
	Email        string     `json:"email" validate:"required,email,max=255"`
	FirstName    string     `json:"first_name" validate:"required,max=100"`
	LastName     string     `json:"last_name" validate:"required,max=100"`
	Role         string     `json:"role,omitempty" validate:"omitempty,oneof=admin standard"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	JobTitleID   *uuid.UUID `json:"job_title_id,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FirstName    string     `json:"first_name" validate:"required,max=100"`
	LastName     string     `json:"last_name" validate:"required,max=100"`
	Role         string     `json:"role,omitempty" validate:"omitempty,oneof=admin standard"`
	JobTitleID   *uuid.UUID `json:"job_title_id,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           string     `json:"role"`
	CompanyID      *uuid.UUID `json:"company_id"`
	OrganizationID *uuid.UUID `json:"organization_id"`
	JobTitle       string     `json:"job_title"`
	Department     string     `json:"department"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// Create creates a new user; the organization always follows the company
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(req.Email)
	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	company, err := s.resolveCompany(email, req.CompanyID)
	if err != nil {
		return nil, err
	}

	role := models.RoleStandard
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	user := &models.User{
		Email:          email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           role,
		CompanyID:      &company.ID,
		OrganizationID: &company.OrganizationID,
	}
	if err := s.applyLookups(user, req.JobTitleID, req.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetAll retrieves users with pagination
func (s *UserService) GetAll(page, pageSize int) (*ListResponse[UserResponse], error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return newList(toUserResponses(users), total, page, pageSize), nil
}

// GetByOrganization retrieves the users of an organization with pagination
func (s *UserService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*ListResponse[UserResponse], error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	users, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return newList(toUserResponses(users), total, page, pageSize), nil
}

// Update updates a user
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.get(id)
	if err != nil {
		return nil, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.Role != "" {
		user.Role = models.Role(req.Role)
	}
	if err := s.applyLookups(user, req.JobTitleID, req.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// Delete deletes a user
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Me returns the authenticated user
func (s *UserService) Me(principal auth.Principal) (*UserResponse, error) {
	if principal.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingPrincipal
	}
	return s.GetByID(principal.UserID)
}

func (s *UserService) get(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) resolveCompany(email string, companyID *uuid.UUID) (*models.CompanyProfile, error) {
	if companyID != nil {
		company, err := s.companies.GetByID(*companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCompanyNotFound
			}
			return nil, fmt.Errorf("failed to get company: %w", err)
		}
		return company, nil
	}

	domain := email[strings.LastIndex(email, "@")+1:]
	company, err := s.companies.GetByEmailDomain(domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownEmailDomain
		}
		return nil, fmt.Errorf("failed to get company by domain: %w", err)
	}
	return company, nil
}

// applyLookups copies job title and department names onto the user so that
// listings need no join; LookupService.Rename keeps the copies current.
func (s *UserService) applyLookups(user *models.User, jobTitleID, departmentID *uuid.UUID) error {
	name, err := s.lookupName(models.LookupKindJobTitle, jobTitleID)
	if err != nil {
		return err
	}
	user.JobTitleID, user.JobTitle = jobTitleID, name

	name, err = s.lookupName(models.LookupKindDepartment, departmentID)
	if err != nil {
		return err
	}
	user.DepartmentID, user.Department = departmentID, name
	return nil
}

func (s *UserService) lookupName(kind models.LookupKind, id *uuid.UUID) (string, error) {
	if id == nil {
		return "", nil
	}
	value, err := s.lookups.GetByID(*id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrLookupValueNotFound
		}
		return "", fmt.Errorf("failed to get lookup value: %w", err)
	}
	if value.Kind != kind {
		return "", apperrors.ErrInvalidLookupKind
	}
	return value.Name, nil
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           string(u.Role),
		CompanyID:      u.CompanyID,
		OrganizationID: u.OrganizationID,
		JobTitle:       u.JobTitle,
		Department:     u.Department,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = *toUserResponse(&users[i])
	}
	return out
}
