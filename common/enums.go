// Enums shared by configuration, the include engine and the command line
// shell. Generated code lives in enums_enum.go.
package common

//go:generate go tool go-enum --marshal --names

// Rule deciding whether a literal directive occurrence is a match.
// ENUM(substring, token, line)
type MatchPolicy int

// What to do when two fragments answer to the same token.
// ENUM(fail, last-wins)
type DuplicatePolicy int

// Kind of failure which aborts processing.
// ENUM(missing-directory, unreadable-file, unwritable-output, duplicate-fragment-token, include-cycle, depth-exceeded)
type ErrorKind int

// ExitCode returns process exit code reported for errors of this kind.
func (k ErrorKind) ExitCode() int {
	if !k.IsValid() {
		return 1
	}
	return int(k) + 2
}
