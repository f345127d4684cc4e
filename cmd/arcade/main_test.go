package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStartProfileKinds(t *testing.T) {
	stop, err := startProfile("")
	if err != nil || stop == nil {
		t.Fatalf("startProfile(\"\") = %v, %v, expected a no-op", stop, err)
	}
	stop()

	if _, err := startProfile("heap"); err == nil {
		t.Error("startProfile(heap) should fail")
	}
}

func TestProfileFlushedOnFailedCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { flagProfile = "" })

	if err := run([]string{"play", "no_such_game", "--profile", "cpu"}); err == nil {
		t.Fatal("play no_such_game should fail")
	}
	if _, err := os.Stat(filepath.Join(".", "cpu.pprof")); err != nil {
		t.Errorf("cpu profile not written: %v", err)
	}
}

func TestPrepareUnknownGame(t *testing.T) {
	if err := prepare("no_such_game", ""); err == nil {
		t.Error("prepare should reject unknown games")
	}
}

func TestListShowsActionKeys(t *testing.T) {
	var out strings.Builder
	writeList(&out)

	for _, want := range []string{"asteroids", "snake", "tetris", "tempest", "z/x superzapper", "c hold"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}
