package checks

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/bartekus/gatecheck/internal/check"
)

// The identifier must appear within the first few lines, leaving room for
// build tags and shebangs.
const licenseScanLines = 5

// LicenseHeader fails when a source file is missing an
// SPDX-License-Identifier line near the top.
func LicenseHeader(ctx context.Context, paths []string) error {
	var missing []string

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := hasLicenseHeader(path)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, path)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return &check.Failure{
		Description: "missing SPDX-License-Identifier header:\n  " + strings.Join(missing, "\n  "),
	}
}

func hasLicenseHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 0; scanner.Scan() && line < licenseScanLines; line++ {
		if strings.Contains(scanner.Text(), "SPDX-License-Identifier:") {
			return true, nil
		}
	}
	return false, scanner.Err()
}
