package domain

import "go.trai.ch/zerr"

// Context is the resolution store for declared launch arguments. It is the
// explicit stand-in for the orchestration runtime's configuration store:
// declarations go in during the construction phase, overrides during the
// resolution phase, and substitutions read resolved values from it.
//
// Context is not safe for concurrent use; the launch phases are synchronous.
type Context struct {
	declared map[string]Argument
	order    []string
	values   map[string]string
}

// NewContext returns an empty resolution context.
func NewContext() *Context {
	return &Context{
		declared: make(map[string]Argument),
		values:   make(map[string]string),
	}
}

// Declare registers the given arguments. Declaring a name twice is an
// error; declaration order is preserved for listing.
func (c *Context) Declare(args ...Argument) error {
	for _, arg := range args {
		if _, ok := c.declared[arg.Name]; ok {
			return zerr.With(zerr.Wrap(ErrDuplicateArgument, "failed to declare argument"), "argument", arg.Name)
		}
		c.declared[arg.Name] = arg
		c.order = append(c.order, arg.Name)
	}
	return nil
}

// Set overrides the resolved value of a declared argument. The name must be
// declared and the value must be a member of the argument's choice set.
func (c *Context) Set(name, value string) error {
	arg, ok := c.declared[name]
	if !ok {
		return zerr.With(zerr.Wrap(ErrUndeclaredArgument, "failed to set argument"), "argument", name)
	}
	if !arg.Allows(value) {
		return zerr.With(zerr.With(
			zerr.Wrap(ErrInvalidChoice, "failed to set argument"),
			"argument", name), "value", value)
	}
	c.values[name] = value
	return nil
}

// Resolve returns the resolved value of a declared argument: the override
// if one was set, the declared default otherwise.
func (c *Context) Resolve(name string) (string, error) {
	arg, ok := c.declared[name]
	if !ok {
		return "", zerr.With(zerr.Wrap(ErrUndeclaredArgument, "failed to resolve argument"), "argument", name)
	}
	if value, ok := c.values[name]; ok {
		return value, nil
	}
	return arg.Default, nil
}

// Declared reports whether the named argument has been declared.
func (c *Context) Declared(name string) bool {
	_, ok := c.declared[name]
	return ok
}

// Arguments returns the declared arguments in declaration order.
func (c *Context) Arguments() []Argument {
	args := make([]Argument, 0, len(c.order))
	for _, name := range c.order {
		args = append(args, c.declared[name])
	}
	return args
}
