package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// XacroExecutable is the external templating tool that expands the robot
// description template.
const XacroExecutable = "xacro"

// DescriptionPackage is the package whose share directory holds the robot
// description templates.
const DescriptionPackage = "tiago_description"

// Invocation is a fully rendered external-process call specification:
// executable plus ordered argument list. Rendering and execution are
// separate phases; executing an Invocation is an adapter concern.
type Invocation struct {
	Executable string
	Args       []string
}

// String renders the invocation as a single command line.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Executable}, i.Args...), " ")
}

// DescriptionCommand is the deferred specification of the xacro call that
// produces the robot description. Template is the absolute path of the
// description template; Config renders the variable assignment block.
type DescriptionCommand struct {
	Template string
	Config   Substitution
}

// NewDescriptionCommand returns the stock description command for the
// template under the given package share directory.
func NewDescriptionCommand(shareDir string) DescriptionCommand {
	return DescriptionCommand{
		Template: filepath.Join(shareDir, "robots", "tiago.urdf.xacro"),
		Config:   XacroConfig{},
	}
}

// Render evaluates the config block against the context and produces the
// process invocation: the template path followed by one name:=value token
// per field. Resolution failures propagate unmodified.
func (d DescriptionCommand) Render(ctx *Context) (Invocation, error) {
	block, err := d.Config.Perform(ctx)
	if err != nil {
		return Invocation{}, zerr.Wrap(err, "failed to render xacro config")
	}
	args := append([]string{d.Template}, strings.Fields(block)...)
	return Invocation{Executable: XacroExecutable, Args: args}, nil
}
