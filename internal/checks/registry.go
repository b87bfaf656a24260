package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bartekus/gatecheck/internal/check"
)

var (
	goFilter = check.MustFilter([]string{".go"},
		`.*\.pb\.go`,
		`.*/testdata/.*`,
	)

	// Source files that carry license headers and TODO conventions.
	sourceFilter = check.MustFilter([]string{".go", ".sh", ".c", ".h", ".cc", ".py"},
		`.*\.pb\.go`,
		`.*/testdata/.*`,
	)
)

var (
	gofmtCheck   = check.Must(check.New("gofmt", Gofmt, check.WithFilter(goFilter), check.RunOnlyIfFiles()))
	licenseCheck = check.Must(check.New("license_header", LicenseHeader, check.WithFilter(sourceFilter), check.RunOnlyIfFiles()))
	todoCheck    = check.Must(check.New("todo_has_owner", TodoHasOwner, check.WithFilter(sourceFilter), check.RunOnlyIfFiles()))
	buildCheck   = check.Must(check.NewNoArg("go_build", GoBuild))
	vetCheck     = check.Must(check.NewNoArg("go_vet", GoVet))
	testCheck    = check.Must(check.NewNoArg("go_test", GoTest))
)

// Programs is the canonical set of named check programs. Order within a
// program is execution order.
var Programs = map[string][]*check.Check{
	"lint":  {gofmtCheck, todoCheck},
	"quick": {gofmtCheck, licenseCheck, todoCheck, buildCheck},
	"full":  {gofmtCheck, licenseCheck, todoCheck, buildCheck, vetCheck, testCheck},
}

// Names returns the program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Programs))
	for name := range Programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Program looks up a named program.
func Program(name string) ([]*check.Check, error) {
	program, ok := Programs[name]
	if !ok {
		return nil, fmt.Errorf("checks: unknown program %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	return program, nil
}
