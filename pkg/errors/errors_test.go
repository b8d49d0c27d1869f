package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	clone := Clone(ErrNotFound, "student not found")

	assert.Equal(t, "student not found", clone.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
	assert.True(t, errors.Is(clone, ErrNotFound))
	assert.False(t, errors.Is(clone, ErrConflict))
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(fmt.Errorf("boom"))

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.EqualError(t, appErr, "internal server error: boom")
}

func TestFromErrorUnwrapsTyped(t *testing.T) {
	wrapped := fmt.Errorf("ctx: %w", Clone(ErrValidation, "bad page"))

	appErr := FromError(wrapped)
	assert.Equal(t, "bad page", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
