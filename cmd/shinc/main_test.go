package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shinc/common"
	"shinc/state"
)

func TestApp_Build(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "structs"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "structs", "Camera.glsl"), []byte("mat4 viewProj;"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "main.vert"), []byte("#include Camera\nvoid main(){}"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx := state.ContextWithEnv(context.Background())
	if err := newApp().Run(ctx, []string{"shinc", "build", src, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "main.vert"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "mat4 viewProj;\nvoid main(){}" {
		t.Errorf("main.vert = %q", data)
	}
}

func TestApp_ExitCode(t *testing.T) {
	ctx := state.ContextWithEnv(context.Background())
	err := newApp().Run(ctx, []string{"shinc", "build", filepath.Join(t.TempDir(), "absent"), t.TempDir()})
	if code := common.ExitCode(err); code != common.ErrorKindMissingDirectory.ExitCode() {
		t.Errorf("exit code = %d (%v), want %d", code, err, common.ErrorKindMissingDirectory.ExitCode())
	}
}

func TestApp_DumpConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "shinc.yaml")
	if err := os.WriteFile(cfgFile, []byte("version: 1\nprocessing:\n  match: line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "dump.yaml")

	ctx := state.ContextWithEnv(context.Background())
	if err := newApp().Run(ctx, []string{"shinc", "--config", cfgFile, "dumpconfig", out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "match: line") {
		t.Errorf("effective configuration not written:\n%s", data)
	}
}

func TestConfigData_Default(t *testing.T) {
	kind, data, err := configData(nil, true)
	if err != nil {
		t.Fatalf("configData() error = %v", err)
	}
	if kind != "default" || !strings.Contains(string(data), "max_depth: 0") {
		t.Errorf("unexpected default configuration %s:\n%s", kind, data)
	}
}

func TestRemoveEmptyPanicLog(t *testing.T) {
	dir := t.TempDir()
	logDest := filepath.Join(dir, "shinc.log")
	panicLog := filepath.Join(dir, "shinc-panic.log")

	if err := os.WriteFile(panicLog, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := removeEmptyPanicLog(logDest); err != nil {
		t.Fatalf("removeEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); !os.IsNotExist(err) {
		t.Error("empty panic log must be removed")
	}

	if err := os.WriteFile(panicLog, []byte("goroutine 1 [running]"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := removeEmptyPanicLog(logDest); err != nil {
		t.Fatalf("removeEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); err != nil {
		t.Error("panic log with content must be kept")
	}
}
