package ports

// ShareResolver locates the installed share directory of a named package.
// The resolution mechanism (installation prefixes, overlays) is owned by the
// adapter; callers only see the final directory or an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=share.go -destination=mocks/mock_share.go -package=mocks
type ShareResolver interface {
	// ShareDirectory returns the absolute share directory of the package.
	// Returns domain.ErrPackageNotFound (wrapped) if no prefix contains it.
	ShareDirectory(pkg string) (string, error)
}
