package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound     = &NotFoundError{Entity: "organization"}
	ErrOrganizationTypeNotFound = &NotFoundError{Entity: "organization type"}
	ErrCompanyNotFound          = &NotFoundError{Entity: "company"}
	ErrRelationNotFound         = &NotFoundError{Entity: "company relation"}
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrCategoryNotFound         = &NotFoundError{Entity: "category"}
	ErrLookupValueNotFound      = &NotFoundError{Entity: "lookup value"}
	ErrPostNotFound             = &NotFoundError{Entity: "post"}
	ErrBriefNotFound            = &NotFoundError{Entity: "brief"}
	ErrPinNotFound              = &NotFoundError{Entity: "pin"}
	ErrNotificationNotFound     = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrOrganizationExists     = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrOrganizationTypeExists = &AlreadyExistsError{Entity: "organization type", Context: "with this name"}
	ErrCompanyExists          = &AlreadyExistsError{Entity: "company", Context: "with this email domain"}
	ErrRelationExists         = &AlreadyExistsError{Entity: "company relation", Context: "between these companies"}
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrCategoryExists         = &AlreadyExistsError{Entity: "category", Context: "with this name"}
	ErrLookupValueExists      = &AlreadyExistsError{Entity: "lookup value", Context: "with this kind and name"}
	ErrAlreadyRated           = &AlreadyExistsError{Entity: "rating", Context: "for this post by this user"}
	ErrAlreadyPinned          = &AlreadyExistsError{Entity: "pin", Context: "for this post by this user"}
)

// Business Logic Errors
var (
	ErrSelfRelation            = &ValidationError{Field: "company_b_id", Message: "a company cannot be related to itself"}
	ErrCannotRateOwnPost       = &ValidationError{Field: "post_id", Message: "posts cannot be rated by their own organization"}
	ErrBriefClosed             = &ValidationError{Field: "brief_id", Message: "brief is closed"}
	ErrUnknownEmailDomain      = &ValidationError{Field: "email", Message: "no company is registered for this email domain"}
	ErrInvalidLookupKind       = &ValidationError{Field: "kind", Message: "unknown lookup kind"}
	ErrInvalidPrivacy          = &ValidationError{Field: "privacy", Message: "unknown privacy level"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrPipelineInvalid         = errors.New("invalid aggregation pipeline")
)

// Authentication Errors
var (
	ErrMissingPrincipal = &AuthenticationError{Message: "no authenticated user in context"}
)

// Authorization Errors
var (
	ErrNotPostOwner          = &AuthorizationError{Message: "only the creator or an admin may modify this post"}
	ErrNotBriefOwner         = &AuthorizationError{Message: "only the brief's company or an admin may modify this brief"}
	ErrNotRelationMember     = &AuthorizationError{Message: "caller's organization owns neither company of the relation"}
	ErrNotNotificationOwner  = &AuthorizationError{Message: "notification belongs to another user"}
	ErrUserHasNoOrganization = &AuthorizationError{Message: "user is not assigned to an organization"}
)

// Configuration Errors
var (
	ErrEventsDisabled = &ConfigurationError{Message: "event publishing is disabled"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
