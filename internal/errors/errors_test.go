package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := NotFoundError("state file missing")
	assert.Equal(t, "not_found: state file missing", err.Error())

	wrapped := InternalError("scene load failed", fmt.Errorf("boom"))
	assert.Equal(t, "internal: scene load failed: boom", wrapped.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{ValidationError("bad"), http.StatusBadRequest},
		{NotFoundError("gone"), http.StatusNotFound},
		{InternalError("broken", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InternalError("wrapper", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestWithField(t *testing.T) {
	err := NotFoundError("missing").WithField("path", "/tmp/state.json")
	assert.Equal(t, "/tmp/state.json", err.Context["path"])
}

func TestAsStructuredError_Passthrough(t *testing.T) {
	orig := ValidationError("bad input")
	got := AsStructuredError(fmt.Errorf("wrapped: %w", orig))
	require.Same(t, orig, got)
}

func TestAsStructuredError_WrapsPlainError(t *testing.T) {
	got := AsStructuredError(errors.New("plain"))
	require.NotNil(t, got)
	assert.Equal(t, TypeInternal, got.Type)
	assert.Equal(t, "internal server error", got.Message)
}

func TestAsStructuredError_Nil(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))
}

func TestToResponse(t *testing.T) {
	err := NotFoundError("missing").WithField("path", "x")
	resp := err.ToResponse()
	assert.Equal(t, "missing", resp.Error)
	assert.Equal(t, TypeNotFound, resp.Type)
	assert.Equal(t, "x", resp.Context["path"])
}
