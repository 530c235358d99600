package serr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageOnly(t *testing.T) {
	err := New("something went wrong")
	assert.Equal(t, "something went wrong", err.Error())
}

func TestError_MessageWithCause(t *testing.T) {
	err := New("could not save record", ErrDB)
	assert.Equal(t, "could not save record: "+ErrDB.Error(), err.Error())
}

func TestError_IsMatchesCause(t *testing.T) {
	err := New("record missing", ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrBadToken))
}

func TestWrapDB_AddsErrDBAsCause(t *testing.T) {
	underlying := errors.New("constraint violated")
	err := WrapDB("create failed", underlying)
	assert.True(t, errors.Is(err, ErrDB))
	assert.True(t, errors.Is(err, underlying))
}

func TestError_NoMessageFallsBackToCause(t *testing.T) {
	err := New("", ErrNotFound)
	assert.Equal(t, ErrNotFound.Error(), err.Error())
}
