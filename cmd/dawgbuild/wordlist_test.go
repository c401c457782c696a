package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadWordList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("CAT CATS\nDOG DOGS\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := readWordList(path)
	if err != nil {
		t.Fatalf("readWordList failed: %v", err)
	}
	want := []string{"CAT", "CATS", "DOG", "DOGS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readWordList = %v, want %v", got, want)
	}
}

func TestReadWordListEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, []byte("   \n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := readWordList(path); err == nil {
		t.Error("readWordList on an all-whitespace file succeeded, want error")
	}
}

func TestReadWordListMissingFile(t *testing.T) {
	if _, err := readWordList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("readWordList on a missing file succeeded, want error")
	}
}
