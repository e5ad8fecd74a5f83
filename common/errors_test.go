package common

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"go.uber.org/multierr"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "path",
			err:  NewPathError(ErrorKindMissingDirectory, "/src/structs", fs.ErrNotExist),
			want: "missing-directory (/src/structs): file does not exist",
		},
		{
			name: "token",
			err:  &Error{Kind: ErrorKindDuplicateFragmentToken, Path: "structs/Light.h", Token: "Light", Err: errors.New("already defined by structs/Light.glsl")},
			want: "duplicate-fragment-token (structs/Light.h) token Light: already defined by structs/Light.glsl",
		},
		{
			name: "chain",
			err:  &Error{Kind: ErrorKindIncludeCycle, Token: "A", Chain: []string{"A", "B", "A"}},
			want: "include-cycle token A [A -> B -> A]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	base := NewPathError(ErrorKindUnreadableFile, "a.vert", fs.ErrPermission)

	if kind, ok := KindOf(fmt.Errorf("unable to process shader a.vert: %w", base)); !ok || kind != ErrorKindUnreadableFile {
		t.Errorf("KindOf(wrapped) = %v, %v", kind, ok)
	}
	if !errors.Is(base, fs.ErrPermission) {
		t.Error("underlying error must be reachable")
	}

	combined := multierr.Append(
		&Error{Kind: ErrorKindDuplicateFragmentToken, Token: "A"},
		&Error{Kind: ErrorKindDuplicateFragmentToken, Token: "B"},
	)
	if kind, ok := KindOf(combined); !ok || kind != ErrorKindDuplicateFragmentToken {
		t.Errorf("KindOf(multierr) = %v, %v", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf(plain) must fail")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("usage"), 1},
		{NewPathError(ErrorKindMissingDirectory, "x", nil), 2},
		{NewPathError(ErrorKindUnreadableFile, "x", nil), 3},
		{NewPathError(ErrorKindUnwritableOutput, "x", nil), 4},
		{&Error{Kind: ErrorKindDuplicateFragmentToken}, 5},
		{fmt.Errorf("wrapped: %w", &Error{Kind: ErrorKindIncludeCycle}), 6},
		{&Error{Kind: ErrorKindDepthExceeded}, 7},
		{&Error{Kind: ErrorKind(42)}, 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestPolicyParsing(t *testing.T) {
	for _, name := range MatchPolicyNames() {
		p, err := ParseMatchPolicy(name)
		if err != nil || p.String() != name {
			t.Errorf("ParseMatchPolicy(%q) = %v, %v", name, p, err)
		}
	}
	if _, err := ParseMatchPolicy("regex"); !errors.Is(err, ErrInvalidMatchPolicy) {
		t.Errorf("expected ErrInvalidMatchPolicy, got %v", err)
	}

	var d DuplicatePolicy
	if err := d.UnmarshalText([]byte("last-wins")); err != nil || d != DuplicatePolicyLastWins {
		t.Errorf("UnmarshalText(last-wins) = %v, %v", d, err)
	}
}
