package domain

import "go.trai.ch/zerr"

var (
	// ErrUndeclaredArgument is returned when a substitution or override
	// references an argument name that was never declared in the context.
	ErrUndeclaredArgument = zerr.New("undeclared launch argument")

	// ErrDuplicateArgument is returned when declaring an argument whose name
	// is already present in the context.
	ErrDuplicateArgument = zerr.New("duplicate launch argument")

	// ErrInvalidChoice is returned when an override value is not a member of
	// the argument's declared choice set.
	ErrInvalidChoice = zerr.New("value not in argument choices")

	// ErrPackageNotFound is returned when a package share directory cannot
	// be located under any installation prefix.
	ErrPackageNotFound = zerr.New("package share directory not found")
)
