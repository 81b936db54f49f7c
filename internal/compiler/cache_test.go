package compiler

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestCache(t *testing.T) *ResultCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenResultCache("sbx-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return c
}

func TestResultCachePutGet(t *testing.T) {
	c := openTestCache(t)
	key := DigestFor([]byte("x = 1\n"))
	stored := CompilationResult{
		Errors: []CompilationError{{Message: "Missing operand", Line: 3, Column: 1}},
	}
	if err := c.Put(key, &stored); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got CompilationResult
	found, err := c.Get(key, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected hit")
	}
	if !reflect.DeepEqual(got, stored) {
		t.Fatalf("got %+v, want %+v", got, stored)
	}
}

func TestResultCacheMiss(t *testing.T) {
	c := openTestCache(t)
	var got CompilationResult
	found, err := c.Get(DigestFor([]byte("unseen")), &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected miss")
	}
}

func TestResultCacheCorruptEntry(t *testing.T) {
	c := openTestCache(t)
	key := DigestFor([]byte("bad"))
	if err := os.WriteFile(c.pathFor(key), []byte("not msgpack"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got CompilationResult
	found, err := c.Get(key, &got)
	if found || err == nil {
		t.Fatalf("corrupt entry must fail: found=%v err=%v", found, err)
	}
}

func TestResultCacheLookupSuccessRequiresArtifact(t *testing.T) {
	c := openTestCache(t)
	dir := t.TempDir()
	exe := filepath.Join(dir, "prog.exe")
	if err := os.WriteFile(exe, []byte("MZ"), 0o755); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	key := DigestFor([]byte("main"))
	res := CompilationResult{Success: true, ExePath: exe}
	if err := c.Put(key, &res); err != nil {
		t.Fatalf("put: %v", err)
	}

	if got, ok := c.Lookup(key); !ok || got.ExePath != exe {
		t.Fatalf("lookup: ok=%v got=%+v", ok, got)
	}

	if err := os.Remove(exe); err != nil {
		t.Fatalf("remove artifact: %v", err)
	}
	if _, ok := c.Lookup(key); ok {
		t.Fatal("stale success entry must not be reused")
	}
}

func TestResultCacheLookupFailureEntry(t *testing.T) {
	// Неуспех переиспользуется без проверки артефакта.
	c := openTestCache(t)
	key := DigestFor([]byte("broken"))
	res := CompilationResult{Errors: []CompilationError{{Message: "bad"}}}
	if err := c.Put(key, &res); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Lookup(key)
	if !ok || len(got.Errors) != 1 {
		t.Fatalf("lookup: ok=%v got=%+v", ok, got)
	}
}

func TestResultCacheNilSafe(t *testing.T) {
	var c *ResultCache
	if err := c.Put(Digest{}, &CompilationResult{}); err != nil {
		t.Fatalf("nil put: %v", err)
	}
	var out CompilationResult
	if found, err := c.Get(Digest{}, &out); found || err != nil {
		t.Fatalf("nil get: found=%v err=%v", found, err)
	}
	if _, ok := c.Lookup(Digest{}); ok {
		t.Fatal("nil lookup must miss")
	}
}

func TestDigestForFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.sb")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := DigestForFile(path)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if want := DigestFor([]byte("x = 1\n")); got != want {
		t.Fatalf("digest mismatch")
	}
	if _, err := DigestForFile(filepath.Join(t.TempDir(), "absent.sb")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
