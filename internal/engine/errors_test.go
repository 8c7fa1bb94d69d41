package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfNilIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOfUnrecognizedErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindOfRecognizesEngineError(t *testing.T) {
	err := NewError(KindNotFound, "missing %d", 42)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "NotFound: missing 42", err.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "InvalidArgument", KindInvalidArgument.String())
	assert.Equal(t, "FailedPrecondition", KindFailedPrecondition.String())
	assert.Equal(t, "AlreadyExists", KindAlreadyExists.String())
	assert.Equal(t, "Internal", KindInternal.String())
}
