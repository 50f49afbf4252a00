package errors

import (
	"errors"
	"fmt"
	"net/http"
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

// ValidationError represents a malformed or missing input
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

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthorizationError represents an actor acting outside of its permissions
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// PrerequisiteError represents an operation attempted before the state it depends on exists
type PrerequisiteError struct {
	Code    string
	Message string
}

func (e *PrerequisiteError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PrerequisiteError
func (e *PrerequisiteError) Is(target error) bool {
	t, ok := target.(*PrerequisiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ConflictError represents an operation that clashes with the current state
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Code == t.Code
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
	ErrStudentNotFound          = &NotFoundError{Entity: "student"}
	ErrFacultyNotFound          = &NotFoundError{Entity: "faculty"}
	ErrAdminNotFound            = &NotFoundError{Entity: "admin"}
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrTeamRequestNotFound      = &NotFoundError{Entity: "team request"}
	ErrProjectProgressNotFound  = &NotFoundError{Entity: "project progress"}
	ErrMeetingNotFound          = &NotFoundError{Entity: "meeting"}
	ErrProofNotFound            = &NotFoundError{Entity: "proof image"}
	ErrInvitationNotFound       = &NotFoundError{Entity: "meeting invitation"}
	ErrProblemStatementNotFound = &NotFoundError{Entity: "problem statement"}
	ErrNotificationNotFound     = &NotFoundError{Entity: "notification"}
)

// Conflict Errors
var (
	ErrAlreadyPending         = &ConflictError{Code: "AlreadyPending", Message: "you already have a pending request"}
	ErrAlreadyTeamed          = &ConflictError{Code: "AlreadyTeamed", Message: "you are already in a team"}
	ErrReceiverAlreadyTeamed  = &ConflictError{Code: "AlreadyTeamed", Message: "this student is already in a team"}
	ErrSenderAlreadyTeamed    = &ConflictError{Code: "SenderAlreadyTeamed", Message: "the sender is already in a team"}
	ErrRequestNotPending      = &ConflictError{Code: "RequestNotPending", Message: "this request has already been answered"}
	ErrMeetingNumberCollision = &ConflictError{Code: "MeetingNumberCollision", Message: "meeting number already exists for this team"}
	ErrCompletionRegressed    = &ConflictError{Code: "CompletionRegressed", Message: "completion percentage cannot go below the previous meeting"}
	ErrInvitationClosed       = &ConflictError{Code: "InvitationClosed", Message: "meeting invitation is no longer open"}
	ErrAlreadyAttended        = &ConflictError{Code: "AlreadyAttended", Message: "attendance has already been recorded"}
	ErrResponseNotAccepted    = &ConflictError{Code: "ResponseNotAccepted", Message: "you must accept the invitation before marking attendance"}
	ErrProblemStatementTaken  = &ConflictError{Code: "ProblemStatementTaken", Message: "problem statement is already assigned to another team"}
	ErrStudentExists          = &ConflictError{Code: "StudentExists", Message: "student already exists with this email or registration number"}
	ErrFacultyExists          = &ConflictError{Code: "FacultyExists", Message: "faculty already exists with this email or faculty id"}
	ErrAdminExists            = &ConflictError{Code: "AdminExists", Message: "admin already exists with this email"}
	ErrProblemStatementExists = &ConflictError{Code: "ProblemStatementExists", Message: "this problem statement already exists"}
)

// Prerequisite Errors
var (
	ErrPrerequisitesNotMet = &PrerequisiteError{Code: "PrerequisitesNotMet", Message: "problem statement and mentor must be assigned first"}
	ErrFormationClosed     = &PrerequisiteError{Code: "FormationClosed", Message: "team member selection is currently closed for your year"}
)

// Validation Errors
var (
	ErrInvalidProof = &ValidationError{Field: "proof", Message: "proof must be a JPEG image of at most 5MB"}
)

// Authorization Errors
var (
	ErrNotTeamMember      = &AuthorizationError{Message: "you are not a member of this team"}
	ErrNotRequestOwner    = &AuthorizationError{Message: "you are not the receiver of this request"}
	ErrNotInvitationHost  = &AuthorizationError{Message: "you did not send this invitation"}
	ErrRoleNotAllowed     = &AuthorizationError{Message: "your role cannot perform this operation"}
	ErrOtherDepartment    = &AuthorizationError{Message: "entity belongs to another department"}
	ErrNotMentor          = &AuthorizationError{Message: "you are not the mentor of this team"}
	ErrNotParticipant     = &AuthorizationError{Message: "you are not invited to this meeting"}
	ErrInvalidCredentials = &AuthorizationError{Message: "invalid email or password"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPrerequisite checks if an error is a PrerequisiteError
func IsPrerequisite(err error) bool {
	var prereqErr *PrerequisiteError
	return errors.As(err, &prereqErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// Code returns the machine readable code of a domain error, or "" for unknown errors
func Code(err error) string {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Code
	}
	var prereqErr *PrerequisiteError
	if errors.As(err, &prereqErr) {
		return prereqErr.Code
	}
	switch {
	case IsValidation(err):
		return "ValidationError"
	case IsAuthorization(err):
		return "AuthorizationError"
	case IsNotFound(err):
		return "NotFound"
	}
	return ""
}

// HTTPStatus returns the status code a domain error is reported with
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsPrerequisite(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(code, message string) error {
	return &ConflictError{Code: code, Message: message}
}

// NewPrerequisiteError creates a new PrerequisiteError
func NewPrerequisiteError(code, message string) error {
	return &PrerequisiteError{Code: code, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
