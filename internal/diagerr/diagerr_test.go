package diagerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisplayMessage(t *testing.T) {
	err := New("bad chunk", "rejected: unexpected byte 0x40 at offset 3")
	assert.Equal(t, "rejected: unexpected byte 0x40 at offset 3", err.Error())
	assert.Equal(t, "bad chunk", DisplayMessage(err))
}

func TestNew_GeneratesTechnicalMessageWhenOmitted(t *testing.T) {
	err := New("bad chunk", "")
	assert.Equal(t, `rejected: "bad chunk"`, err.Error())
}

func TestNewf_FormatsDisplayMessage(t *testing.T) {
	err := Newf("bad chunk at %d", 3)
	assert.Equal(t, "bad chunk at 3", DisplayMessage(err))
}

func TestWrap_UnwrapsToOriginal(t *testing.T) {
	orig := errors.New("underlying failure")
	err := Wrap(orig, "bad chunk", "")
	assert.ErrorIs(t, err, orig)
}

func TestDisplayMessage_FallsBackToErrorForOtherTypes(t *testing.T) {
	err := errors.New("plain error")
	assert.Equal(t, "plain error", DisplayMessage(err))
}
