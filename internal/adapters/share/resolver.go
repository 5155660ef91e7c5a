// Package share resolves installed package share directories.
package share

import (
	"os"
	"path/filepath"

	"go.trai.ch/tiago/internal/core/domain"
	"go.trai.ch/tiago/internal/core/ports"
	"go.trai.ch/zerr"
)

// PrefixPathVar is the environment variable listing installation prefixes,
// separated by the platform list separator. Each prefix is expected to
// contain share/<package>.
const PrefixPathVar = "AMENT_PREFIX_PATH"

var _ ports.ShareResolver = (*AmentResolver)(nil)

// AmentResolver implements ports.ShareResolver by scanning the ament
// installation prefixes in order. The first prefix containing the package
// wins, matching overlay semantics.
type AmentResolver struct {
	// prefixes overrides the environment lookup when non-nil. Used in tests.
	prefixes []string
}

// NewAmentResolver creates a resolver reading prefixes from the environment
// at each call.
func NewAmentResolver() *AmentResolver {
	return &AmentResolver{}
}

// NewFixedResolver creates a resolver scanning only the given prefixes.
func NewFixedResolver(prefixes ...string) *AmentResolver {
	return &AmentResolver{prefixes: prefixes}
}

// ShareDirectory returns the share directory of the package under the first
// prefix that contains it.
func (r *AmentResolver) ShareDirectory(pkg string) (string, error) {
	prefixes := r.prefixes
	if prefixes == nil {
		prefixes = filepath.SplitList(os.Getenv(PrefixPathVar))
	}

	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		dir := filepath.Join(prefix, "share", pkg)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	return "", zerr.With(zerr.With(
		zerr.Wrap(domain.ErrPackageNotFound, "failed to locate package share directory"),
		"package", pkg), "prefix_path", os.Getenv(PrefixPathVar))
}
