package main

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()
	w.Close()
	return <-done
}

func newTestDemo() *demo {
	return &demo{log: zap.NewNop()}
}

func TestS1_GuardRunsLast(t *testing.T) {
	out := captureStdout(t, func() {
		newTestDemo().s1("Should be 2nd")
	})

	want := "Should be first...\nstrMessage:\nShould be 2nd\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRelease_SuppressesDeleter(t *testing.T) {
	out := captureStdout(t, func() {
		newTestDemo().release()
	})

	if strings.Contains(out, "revoking") {
		t.Fatalf("deleter ran after Release: %q", out)
	}
	if !strings.Contains(out, "kept session-42, guard Guard1(disarmed)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestWasm_ModuleBeforeRuntime(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = newTestDemo().wasm(context.Background())
	})
	if err != nil {
		t.Fatalf("wasm: %v", err)
	}

	mod := strings.Index(out, "dropped module")
	rt := strings.Index(out, "dropped runtime")
	if mod < 0 || rt < 0 {
		t.Fatalf("missing drop events in %q", out)
	}
	if mod > rt {
		t.Fatalf("module must be released before runtime:\n%s", out)
	}
	if !strings.Contains(out, "guards in table: 2") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSection_Plain(t *testing.T) {
	out := captureStdout(t, func() {
		newTestDemo().section("Title")
	})
	if out != "\n== Title ==\n" {
		t.Fatalf("output = %q", out)
	}
}
