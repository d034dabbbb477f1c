package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnvFile(t, `
# service settings
PORT=3000
export QUEUE_URL=https://sqs.us-east-1.amazonaws.com/123456789012/my-queue

NAME="quoted value"
MOTTO='single quoted'
EMPTY=
SPACED =  padded
EQUALS=a=b=c
`)

	src, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"PORT":      "3000",
		"QUEUE_URL": "https://sqs.us-east-1.amazonaws.com/123456789012/my-queue",
		"NAME":      "quoted value",
		"MOTTO":     "single quoted",
		"EMPTY":     "",
		"SPACED":    "padded",
		"EQUALS":    "a=b=c",
	}
	if len(src) != len(want) {
		t.Fatalf("entries = %d, want %d: %v", len(src), len(want), src)
	}
	for k, v := range want {
		got, ok := src.Lookup(k)
		if !ok {
			t.Errorf("key %s missing", k)
			continue
		}
		if got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestLoadEnvFile_MalformedLine(t *testing.T) {
	path := writeEnvFile(t, "PORT=3000\nnot a pair\n")

	_, err := LoadEnvFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestLoadEnvFile_EmptyKey(t *testing.T) {
	path := writeEnvFile(t, "=value\n")

	_, err := LoadEnvFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "empty key") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if _, err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("expected error for missing file")
	}
}
