package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("outer").Wrap(e2)

	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.Equal(t, e2, e.Unwrap())
}

func TestWrapKeepsSentinelIdentity(t *testing.T) {
	sentinel := New("something went wrong")
	cause := New("root cause")

	wrapped := sentinel.Wrap(cause)
	assert.True(t, Is(wrapped, sentinel))
	assert.True(t, Is(wrapped, cause))

	// double wrap still matches the original sentinel
	rewrapped := wrapped.Wrap(New("other cause"))
	assert.True(t, Is(rewrapped, sentinel))
}

func TestWrapDoesNotMutateSentinel(t *testing.T) {
	sentinel := New("sentinel")
	_ = sentinel.Wrap(New("cause"))

	assert.Nil(t, sentinel.Unwrap())
	assert.Equal(t, "sentinel", sentinel.Error())
}

func TestErrorMessageCarriesCause(t *testing.T) {
	wrapped := New("i/o failure").Wrap(New("bad manifest"))
	assert.Equal(t, "i/o failure: bad manifest", wrapped.Error())
}
