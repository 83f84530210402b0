// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindIneligible, KindOf(Ineligible("nope")))
	assert.Equal(t, KindInvalidState, KindOf(InvalidState("bad move")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("db down"))))
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handler context: %w", Forbidden("access denied"))
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "missing", NotFound("missing").Error())
	assert.Equal(t, "internal error", Internal(errors.New("db down")).Error())

	cause := errors.New("db down")
	assert.True(t, errors.Is(Internal(cause), cause))
}

func TestErrorWithoutMessageFallsBackToCause(t *testing.T) {
	err := &Error{Kind: KindInternal, Err: errors.New("socket closed")}
	assert.Equal(t, "socket closed", err.Error())

	bare := &Error{Kind: KindConflict}
	assert.Equal(t, "conflict", bare.Error())
}
