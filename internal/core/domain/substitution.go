package domain

import "strings"

// Substitution is a deferred text expression. It is constructed once and
// evaluated later against a resolution context, possibly several times with
// different results. Describe renders the unevaluated expression for
// diagnostics.
type Substitution interface {
	Perform(ctx *Context) (string, error)
	Describe() string
}

// Text is a literal fragment; it evaluates to itself.
type Text string

// Perform returns the literal text.
func (t Text) Perform(*Context) (string, error) { return string(t), nil }

// Describe returns the literal wrapped in double quotes.
func (t Text) Describe() string { return `"` + string(t) + `"` }

// Configuration reads the resolved value of a declared launch argument.
type Configuration string

// Perform resolves the argument from the context.
func (c Configuration) Perform(ctx *Context) (string, error) {
	return ctx.Resolve(string(c))
}

// Describe returns the argument reference.
func (c Configuration) Describe() string { return "config(" + string(c) + ")" }

// Concat joins the results of its parts with no separator. Evaluation is
// left to right and stops at the first error.
type Concat []Substitution

// Perform evaluates each part in order and concatenates the results.
func (c Concat) Perform(ctx *Context) (string, error) {
	var b strings.Builder
	for _, part := range c {
		text, err := part.Perform(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// Describe lists the unevaluated parts.
func (c Concat) Describe() string {
	parts := make([]string, len(c))
	for i, part := range c {
		parts[i] = part.Describe()
	}
	return "concat(" + strings.Join(parts, ", ") + ")"
}
