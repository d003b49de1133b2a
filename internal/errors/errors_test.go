package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "items", Message: "at least one item is required"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestConflictError_IsConflictError(t *testing.T) {
	err := NewConflictError("order is not pending")

	conflictErr, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.NotNil(t, conflictErr)
	assert.Equal(t, "order is not pending", conflictErr.Message)

	_, ok = IsConflictError(errors.New("something else"))
	assert.False(t, ok)
}

func TestSignatureError_IsSignatureError(t *testing.T) {
	err := NewSignatureError("signature mismatch")

	sigErr, ok := IsSignatureError(err)
	assert.True(t, ok)
	assert.NotNil(t, sigErr)
	assert.Equal(t, "signature mismatch", sigErr.Message)

	_, ok = IsSignatureError(NewValidationError("not a signature problem"))
	assert.False(t, ok)
}

func TestProviderError_CarriesStatusCode(t *testing.T) {
	err := NewProviderError(402, "card declined")

	providerErr, ok := IsProviderError(err)
	assert.True(t, ok)
	assert.Equal(t, 402, providerErr.StatusCode)
	assert.Contains(t, err.Error(), "402")
	assert.Contains(t, err.Error(), "card declined")
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
