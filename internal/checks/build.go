package checks

import "context"

// GoBuild compiles every package in the repository. It runs regardless of
// which files changed: any change can break the build.
func GoBuild(ctx context.Context) error {
	return Call(ctx, "go", "build", "./...")
}

// GoVet runs the standard vet analyzers over the repository.
func GoVet(ctx context.Context) error {
	return Call(ctx, "go", "vet", "./...")
}

// GoTest runs the repository's tests.
func GoTest(ctx context.Context) error {
	return Call(ctx, "go", "test", "./...")
}
