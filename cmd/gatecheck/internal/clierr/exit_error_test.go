package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, 0, ExitCodeOf(nil))
	assert.Equal(t, 1, ExitCodeOf(errors.New("plain")))
	assert.Equal(t, 2, ExitCodeOf(New(2, "config")))
	assert.Equal(t, 3, ExitCodeOf(fmt.Errorf("wrapped: %w", New(3, "inner"))))
}

func TestNormalizeNeverZero(t *testing.T) {
	assert.Equal(t, 1, ExitCodeOf(New(0, "zero is success, errors are not")))
	assert.Equal(t, 1, ExitCodeOf(New(-5, "negative")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(2, "loading configuration", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "loading configuration: root cause", err.Error())
	assert.Equal(t, 2, ExitCodeOf(err))
}
