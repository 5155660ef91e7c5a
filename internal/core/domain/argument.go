// Package domain holds the pure launch-configuration model: argument
// declarations, the resolution context, and deferred text substitutions.
package domain

import "slices"

// Argument is a declarable, user-overridable launch argument with a fixed
// set of allowed values. Declarations are plain data; registering them with
// a Context is the caller's responsibility.
type Argument struct {
	Name        string
	Default     string
	Description string
	Choices     []string
}

// Allows reports whether value is a member of the argument's choice set.
// Arguments declared without choices allow any value.
func (a Argument) Allows(value string) bool {
	if len(a.Choices) == 0 {
		return true
	}
	return slices.Contains(a.Choices, value)
}
