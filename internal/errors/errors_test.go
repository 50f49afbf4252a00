package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrMeetingNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrAlreadyPending))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("errors.Is compares codes", func(t *testing.T) {
		err := NewConflictError("AlreadyPending", "different message")
		assert.True(t, errors.Is(err, ErrAlreadyPending))
		assert.False(t, errors.Is(err, ErrAlreadyTeamed))
	})

	t.Run("receiver teamed reports AlreadyTeamed", func(t *testing.T) {
		assert.True(t, errors.Is(ErrReceiverAlreadyTeamed, ErrAlreadyTeamed))
		assert.False(t, errors.Is(ErrSenderAlreadyTeamed, ErrAlreadyTeamed))
	})

	t.Run("IsConflict through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("accept: %w", ErrSenderAlreadyTeamed)
		assert.True(t, IsConflict(wrapped))
		assert.Equal(t, "SenderAlreadyTeamed", Code(wrapped))
	})
}

func TestPrerequisiteError(t *testing.T) {
	assert.True(t, IsPrerequisite(ErrPrerequisitesNotMet))
	assert.True(t, errors.Is(NewPrerequisiteError("PrerequisitesNotMet", "x"), ErrPrerequisitesNotMet))
	assert.False(t, errors.Is(ErrFormationClosed, ErrPrerequisitesNotMet))
	assert.False(t, IsPrerequisite(ErrAlreadyTeamed))
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{ErrAlreadyPending, "AlreadyPending"},
		{ErrPrerequisitesNotMet, "PrerequisitesNotMet"},
		{ErrInvalidProof, "ValidationError"},
		{ErrNotTeamMember, "AuthorizationError"},
		{ErrTeamNotFound, "NotFound"},
		{errors.New("connection reset"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, Code(tc.err))
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.Equal(t, "nope", err.Error())
		assert.True(t, IsAuthorization(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	})
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidProof, http.StatusBadRequest},
		{ErrNotMentor, http.StatusForbidden},
		{ErrTeamNotFound, http.StatusNotFound},
		{ErrCompletionRegressed, http.StatusConflict},
		{ErrPrerequisitesNotMet, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", ErrAlreadyTeamed), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}
