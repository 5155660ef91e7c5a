package domain

import "strings"

// xacroConfigFields are the arguments the description template consumes, in
// the order they are passed to xacro.
var xacroConfigFields = []string{
	ArgLaserModel,
	ArgArm,
	ArgEndEffector,
	ArgFTSensor,
	ArgCameraModel,
}

// XacroConfig is a deferred expression that renders the hardware launch
// arguments as xacro variable assignments: one " name:=value" token per
// field, each with a leading space, in fixed order. Every referenced
// argument must be declared in the context by evaluation time; an
// undeclared one fails the whole evaluation.
type XacroConfig struct{}

// Perform renders the assignment block from the context.
func (XacroConfig) Perform(ctx *Context) (string, error) {
	var b strings.Builder
	for _, name := range xacroConfigFields {
		value, err := ctx.Resolve(name)
		if err != nil {
			return "", err
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(":=")
		b.WriteString(value)
	}
	return b.String(), nil
}

// Describe returns a summary of the assignment block.
func (XacroConfig) Describe() string {
	return "xacro-config(" + strings.Join(xacroConfigFields, ", ") + ")"
}
