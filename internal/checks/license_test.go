package checks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gatecheck/internal/check"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLicenseHeaderPass(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.go", "// SPDX-License-Identifier: AGPL-3.0-or-later\npackage a\n")
	late := writeFile(t, dir, "late.go", "//go:build linux\n\n// SPDX-License-Identifier: AGPL-3.0-or-later\npackage a\n")

	assert.NoError(t, LicenseHeader(context.Background(), []string{good, late}))
}

func TestLicenseHeaderFail(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.go", "// SPDX-License-Identifier: AGPL-3.0-or-later\npackage a\n")
	bad := writeFile(t, dir, "bad.go", "package a\n")

	err := LicenseHeader(context.Background(), []string{good, bad})
	require.Error(t, err)

	var failure *check.Failure
	require.True(t, errors.As(err, &failure))
	assert.Contains(t, failure.Description, "bad.go")
	assert.NotContains(t, failure.Description, "good.go")
}

func TestLicenseHeaderTooDeep(t *testing.T) {
	dir := t.TempDir()
	deep := writeFile(t, dir, "deep.go",
		"package a\n\n\n\n\n\n// SPDX-License-Identifier: AGPL-3.0-or-later\n")

	assert.Error(t, LicenseHeader(context.Background(), []string{deep}),
		"identifier past the scan window does not count")
}
