package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/letterflash/internal/errors"
)

func TestAsAppError(t *testing.T) {
	notFound := errors.NewNotFoundError("board", "weekly")
	wrapped := fmt.Errorf("lookup: %w", notFound)

	got := errors.AsAppError(wrapped)
	assert.Same(t, notFound, got)
	assert.Equal(t, http.StatusNotFound, got.Status)

	plain := stderrors.New("disk full")
	internal := errors.AsAppError(plain)
	assert.Equal(t, errors.ErrCodeInternal, internal.Code)
	assert.ErrorIs(t, internal, plain)
}

func TestAppError_Message(t *testing.T) {
	err := errors.NewValidationError("digits", "must be 1, 2 or 3")
	assert.Equal(t, "VALIDATION_ERROR: validation failed for digits: must be 1, 2 or 3", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.Status)
}
