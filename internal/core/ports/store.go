package ports

import "go.trai.ch/tiago/internal/core/domain"

// DescriptionStore caches rendered robot descriptions per invocation. How
// invocations are keyed is the adapter's concern. The cache is an
// optimization only: a miss simply means the description is rendered again.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DescriptionStore interface {
	// Get retrieves the cached document for the invocation.
	// Returns "", false if not present.
	Get(inv domain.Invocation) (string, bool)

	// Put stores the document rendered by the invocation.
	Put(inv domain.Invocation, document string) error
}
