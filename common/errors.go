package common

import (
	"errors"
	"strings"
)

// Error is returned for failures which abort processing. Kind allows callers
// to decide on exit code without looking at message text.
type Error struct {
	Kind  ErrorKind
	Path  string
	Token string
	// Chain is the include chain for cycle and depth errors, outermost first.
	Chain []string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if len(e.Path) > 0 {
		b.WriteString(" (")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if len(e.Token) > 0 {
		b.WriteString(" token ")
		b.WriteString(e.Token)
	}
	if len(e.Chain) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Chain, " -> "))
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewPathError creates error of specified kind for a file system location.
func NewPathError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf returns kind of the first *Error found in err chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return ErrorKind(0), false
}

// ExitCode maps err to process exit code: 0 for nil, kind specific code for
// *Error, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if kind, ok := KindOf(err); ok {
		return kind.ExitCode()
	}
	return 1
}
