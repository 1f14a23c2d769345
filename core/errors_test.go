package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EINVALID, "tree is %s", "broken")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "tree is broken", UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
}

func TestWrapErrorKeepsChain(t *testing.T) {
	cause := errors.New("cause")
	err := WrapError(cause, EMISSING, "lost %d", 1)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "lost 1", UserMessage(err))
	err = ErrorWithCode(nil, ELIMIT)
	assert.Equal(t, ELIMIT, Code(err))
	assert.Equal(t, "limit exceeded", UserMessage(err))
}

func TestUnsupportedNodeError(t *testing.T) {
	var err error = &UnsupportedNodeError{Kind: "math"}
	wrapped := fmt.Errorf("compiling: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnsupportedNode))
	assert.Equal(t, EUNSUPPORTED, Code(wrapped))
	assert.Contains(t, err.Error(), `"math"`)
	var une *UnsupportedNodeError
	if assert.True(t, errors.As(wrapped, &une)) {
		assert.Equal(t, "math", une.Kind)
	}
}
