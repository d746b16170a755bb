// Package requirements checks that the installer can run in the current environment.
package requirements

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/thorrdu/cutc/internal/utils"
)

// MinRuntimeVersion is the oldest Go runtime the installer supports.
// Keep in sync with the go directive in go.mod.
const MinRuntimeVersion = ">= 1.25"

var (
	// ErrUnsupportedRuntime is returned when the runtime version check fails
	ErrUnsupportedRuntime = errors.New("unsupported runtime")
	// ErrNoWritePermission is returned when the project root is not writable
	ErrNoWritePermission = errors.New("no write permission")
	// ErrNotProjectRoot is returned when the working directory is unusable
	ErrNotProjectRoot = errors.New("not a project root")
)

// CheckRuntime verifies the running Go runtime satisfies MinRuntimeVersion
func CheckRuntime() error {
	return CheckRuntimeVersion(runtime.Version(), MinRuntimeVersion)
}

// CheckRuntimeVersion verifies goVersion (as reported by runtime.Version) satisfies constraint.
// Development builds ("devel ...") always pass.
func CheckRuntimeVersion(goVersion, constraint string) error {
	if strings.HasPrefix(goVersion, "devel") {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid runtime constraint %q: %w", constraint, err)
	}

	v, err := parseGoVersion(goVersion)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedRuntime, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedRuntime, goVersion, constraint)
	}
	return nil
}

// parseGoVersion turns "go1.24.3", "go1.25rc1" or "go1.22" into a semantic version
func parseGoVersion(goVersion string) (*semver.Version, error) {
	v := strings.TrimPrefix(goVersion, "go")
	// Drop anything after a space, e.g. "go1.24.3 X:nocoverageredesign"
	if idx := strings.IndexByte(v, ' '); idx != -1 {
		v = v[:idx]
	}
	// Pre-releases count as their release line
	for _, tag := range []string{"rc", "beta"} {
		if idx := strings.Index(v, tag); idx != -1 {
			v = v[:idx]
			break
		}
	}

	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid runtime version %q: %w", goVersion, err)
	}
	return parsed, nil
}

// CheckProjectRoot verifies root exists and is a directory
func CheckProjectRoot(root string) error {
	if !utils.IsDirectory(root) {
		return fmt.Errorf("%w: %s is not a directory", ErrNotProjectRoot, root)
	}
	return nil
}

// CheckWritable verifies a file can be created in dir
func CheckWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".cutc-write-check-*")
	if err != nil {
		return fmt.Errorf("%w in %s: %w", ErrNoWritePermission, dir, err)
	}
	name := f.Name()
	_ = f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("failed to remove write check file: %w", err)
	}
	return nil
}

// Check runs every prerequisite against root
func Check(root string) error {
	if err := CheckRuntime(); err != nil {
		return err
	}
	if err := CheckProjectRoot(root); err != nil {
		return err
	}
	return CheckWritable(root)
}
