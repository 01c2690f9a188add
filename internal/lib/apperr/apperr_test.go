package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{name: "validation", err: Validation("bad"), kind: ErrValidation},
		{name: "unauthenticated", err: Unauthenticated("bad"), kind: ErrUnauthenticated},
		{name: "conflict", err: Conflict("bad"), kind: ErrConflict},
		{name: "not found", err: NotFound("bad"), kind: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.kind)
		})
	}
}

func TestMessage(t *testing.T) {
	msg, ok := Message(fmt.Errorf("services.contact.Get: %w", NotFound("contact not found")))
	assert.True(t, ok)
	assert.Equal(t, "contact not found", msg)

	_, ok = Message(errors.New("plain"))
	assert.False(t, ok)
}
