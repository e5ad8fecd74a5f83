// Package include resolves "#include <token>" directives in shader sources by
// substituting named fragments.
package include

// DirectivePrefix is the literal text preceding fragment token in directive.
const DirectivePrefix = "#include "

// Fragment is a named block of shader text to be inlined into shaders.
type Fragment struct {
	Token string
	Body  string
	// Path is where fragment was loaded from, used in diagnostics only.
	Path string
}

// Directive returns the exact text fragment answers to.
func (f Fragment) Directive() string {
	return DirectivePrefix + f.Token
}

// Shader is a single shader source being processed.
type Shader struct {
	Token string
	// OutputName is the original file name including extension, several
	// shader stages may share the same token.
	OutputName string
	Path       string
	Body       string
}
