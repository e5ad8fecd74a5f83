package build

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"shinc/common"
	"shinc/include"
)

func TestOutputPath(t *testing.T) {
	sh := include.Shader{Token: "main", OutputName: "main.vert"}
	if got := outputPath("/out", sh); got != filepath.Join("/out", "main.vert") {
		t.Errorf("outputPath() = %q", got)
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.frag")
	for _, text := range []string{"first version", "second"} {
		if err := writeOutput(path, text); err != nil {
			t.Fatalf("writeOutput() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != text {
			t.Errorf("file content = %q, want %q", data, text)
		}
	}
}

func TestWriteOutput_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "a.frag")
	err := writeOutput(path, "x")

	var e *common.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *common.Error, got %v", err)
	}
	if e.Kind != common.ErrorKindUnwritableOutput || e.Path != path {
		t.Errorf("unexpected error %+v", e)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("underlying error must be kept: %v", err)
	}
}
