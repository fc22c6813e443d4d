package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"not found", NotFoundf("planet not found with id: %d", 9), ErrorTypeNotFound},
		{"validation", MissingField("user_id"), ErrorTypeValidation},
		{"wrapped validation", fmt.Errorf("handler: %w", Validation("bad")), ErrorTypeValidation},
		{"method", MethodNotAllowed("PATCH"), ErrorTypeMethodNotAllowed},
		{"plain error", errors.New("boom"), ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetType(tt.err))
		})
	}
}

func TestAppErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapInternal("failed to query people", cause)

	assert.Equal(t, "failed to query people: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to query people", ClientMessage(err))

	assert.Equal(t, "user_id is required", ClientMessage(MissingField("user_id")))
	assert.Equal(t, "internal server error", ClientMessage(errors.New("secret detail")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsNotFound(fmt.Errorf("service: %w", NotFound("missing"))))
	assert.False(t, IsNotFound(Validation("bad")))
	assert.False(t, IsNotFound(nil))
}
