package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gatecheck/internal/check"
)

func TestTodoHasOwnerPass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "owned.go",
		"package a\n\n// TODO(alice): tighten this bound\nvar x = 1\n")

	assert.NoError(t, TodoHasOwner(context.Background(), []string{path}))
}

func TestTodoHasOwnerFail(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unowned.go",
		"package a\n\n// TODO: somebody fix this\nvar x = 1\n")

	err := TodoHasOwner(context.Background(), []string{path})
	require.Error(t, err)

	var failure *check.Failure
	require.True(t, errors.As(err, &failure))
	assert.Contains(t, failure.Description, "unowned.go:3")
}

func TestTodoHasOwnerIgnoresPlainProse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prose.go",
		"package a\n\n// The todos in this file are all owned.\nvar x = 1\n")

	assert.NoError(t, TodoHasOwner(context.Background(), []string{path}))
}
