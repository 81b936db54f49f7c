package compiler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachedResult format changes
const cacheSchemaVersion uint16 = 1

// Digest — SHA-256 содержимого исходника; ключ кэша результатов.
type Digest [32]byte

// DigestFor hashes raw source content into a cache key.
func DigestFor(content []byte) Digest {
	return sha256.Sum256(content)
}

// DigestForFile hashes the current on-disk content of a source file.
func DigestForFile(path string) (Digest, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return DigestFor(content), nil
}

// ResultCache хранит итоги компиляции по хэшу исходника на диске.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedResult — сериализуемая обёртка: версия схемы + сам результат.
type cachedResult struct {
	Schema uint16
	Result CompilationResult
}

// OpenResultCache initializes and returns a result cache at the standard
// location ($XDG_CACHE_HOME or ~/.cache).
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

func (c *ResultCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a result to the cache.
func (c *ResultCache) Put(key Digest, res *CompilationResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(f).Encode(cachedResult{Schema: cacheSchemaVersion, Result: *res}); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a cached result. Запись с чужой версией схемы
// считается отсутствующей, а не ошибкой.
func (c *ResultCache) Get(key Digest, out *CompilationResult) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	var cached cachedResult
	if err := msgpack.NewDecoder(f).Decode(&cached); err != nil {
		return false, err
	}
	if cached.Schema != cacheSchemaVersion {
		return false, nil
	}
	*out = cached.Result
	return true, nil
}

// Lookup возвращает закэшированный результат, пригодный к повторному
// использованию: успех засчитывается только пока артефакт существует.
// Любой сбой чтения кэша деградирует в промах.
func (c *ResultCache) Lookup(key Digest) (CompilationResult, bool) {
	var res CompilationResult
	found, err := c.Get(key, &res)
	if err != nil || !found {
		return CompilationResult{}, false
	}
	if res.Success && !artifactExists(res.ExePath) {
		return CompilationResult{}, false
	}
	return res, true
}
