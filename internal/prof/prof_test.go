package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func statNonEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestStartCPU(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpu.pprof")
	stop, err := StartCPU(path)
	if err != nil {
		t.Fatalf("StartCPU: %v", err)
	}
	stop()
	statNonEmpty(t, path)

	// the profiler must be reusable after stop
	again := filepath.Join(dir, "cpu2.pprof")
	stop, err = StartCPU(again)
	if err != nil {
		t.Fatalf("second StartCPU: %v", err)
	}
	stop()
}

func TestStartCPUBadPath(t *testing.T) {
	if _, err := StartCPU(t.TempDir()); err == nil {
		t.Fatal("StartCPU on a directory path succeeded")
	}
}

func TestWriteMem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.pprof")
	if err := WriteMem(path); err != nil {
		t.Fatalf("WriteMem: %v", err)
	}
	statNonEmpty(t, path)
}

func TestStartTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	stop, err := StartTrace(path)
	if err != nil {
		t.Fatalf("StartTrace: %v", err)
	}
	stop()
	statNonEmpty(t, path)
}
