package include

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"shinc/common"
)

func TestNewSet_NaturalOrder(t *testing.T) {
	set, err := NewSet([]Fragment{
		{Token: "Light10"},
		{Token: "Camera"},
		{Token: "Light2"},
		{Token: "Light"},
	}, common.DuplicatePolicyFail)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}

	want := []string{"Camera", "Light", "Light2", "Light10"}
	if diff := cmp.Diff(want, set.Tokens()); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d, want 4", set.Len())
	}
}

func TestNewSet_Lookup(t *testing.T) {
	set, err := NewSet([]Fragment{
		{Token: "Camera", Body: "mat4 viewProj;", Path: "structs/Camera.glsl"},
	}, common.DuplicatePolicyFail)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}

	f, ok := set.Lookup("Camera")
	if !ok {
		t.Fatal("Lookup(Camera) not found")
	}
	if f.Body != "mat4 viewProj;" || f.Path != "structs/Camera.glsl" {
		t.Errorf("Lookup(Camera) = %+v", f)
	}
	if _, ok := set.Lookup("camera"); ok {
		t.Error("Lookup must be case sensitive")
	}
}

func TestNewSet_DuplicateFail(t *testing.T) {
	_, err := NewSet([]Fragment{
		{Token: "Camera", Path: "a/Camera.glsl"},
		{Token: "Camera", Path: "a/Camera.hlsl"},
		{Token: "Light", Path: "a/Light.glsl"},
		{Token: "Light", Path: "a/Light.hlsl"},
	}, common.DuplicatePolicyFail)
	if err == nil {
		t.Fatal("expected error for duplicate tokens")
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	for _, e := range errs {
		var ce *common.Error
		if !errors.As(e, &ce) {
			t.Fatalf("error %v is not *common.Error", e)
		}
		if ce.Kind != common.ErrorKindDuplicateFragmentToken {
			t.Errorf("Kind = %v, want %v", ce.Kind, common.ErrorKindDuplicateFragmentToken)
		}
	}
	if kind, ok := common.KindOf(err); !ok || kind != common.ErrorKindDuplicateFragmentToken {
		t.Errorf("KindOf() = %v, %v", kind, ok)
	}
}

func TestNewSet_DuplicateLastWins(t *testing.T) {
	set, err := NewSet([]Fragment{
		{Token: "Camera", Body: "first"},
		{Token: "Light", Body: "light"},
		{Token: "Camera", Body: "second"},
	}, common.DuplicatePolicyLastWins)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	f, _ := set.Lookup("Camera")
	if f.Body != "second" {
		t.Errorf("Camera body = %q, want %q", f.Body, "second")
	}
}

func TestNewSet_Empty(t *testing.T) {
	set, err := NewSet(nil, common.DuplicatePolicyFail)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if set.Len() != 0 || len(set.Tokens()) != 0 {
		t.Errorf("expected empty set, got %v", set.Tokens())
	}
}
