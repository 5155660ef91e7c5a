package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tiago/internal/core/domain"
)

// Key computes the cache key of an invocation: the XXHash of the executable
// and argument list, NUL-separated so token boundaries stay unambiguous.
func Key(inv domain.Invocation) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(inv.Executable)
	_, _ = hasher.Write([]byte{0})
	for _, arg := range inv.Args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
