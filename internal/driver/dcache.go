package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sift/internal/diag"
	"sift/internal/lint"
	"sift/internal/source"
)

// Increment when the CachePayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest = [32]byte

// DiskCache persists per-file lint results keyed by content hash plus
// rule-set fingerprint. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the on-disk record for one linted file.
type CachePayload struct {
	Schema      uint16
	Fingerprint Digest
	Diags       []CachedDiag
}

// CachedDiag stores a diagnostic with raw offsets. FileIDs are not
// stable across runs, so the loader re-applies the current one.
type CachedDiag struct {
	Severity uint8
	Code     string
	Message  string
	Start    uint32
	End      uint32
}

func (d CachedDiag) toDiagnostic(file source.FileID) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.Severity(d.Severity),
		Code:     d.Code,
		Message:  d.Message,
		Primary: source.Span{
			File:  file,
			Start: d.Start,
			End:   d.End,
		},
	}
}

// OpenDiskCache initializes a disk cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at dir. Tests use it
// to keep cache state inside a temp directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// RuleSetFingerprint hashes the sorted active rule codes, so enabling
// or disabling a rule invalidates every cached entry.
func RuleSetFingerprint(factories []lint.Factory) Digest {
	codes := make([]string, 0, len(factories))
	for _, f := range factories {
		codes = append(codes, f().Code())
	}
	sort.Strings(codes)

	h := sha256.New()
	for _, code := range codes {
		h.Write([]byte(code))
		h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, replacing atomically.
func (c *DiskCache) Put(key Digest, payload *CachePayload) error {
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
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; a missing entry is (false, nil).
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
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
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey mixes the file's content hash with the rule fingerprint.
func cacheKey(file *source.File, fingerprint Digest) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write(fingerprint[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheLookup returns the cached diagnostics for a file, if the entry
// exists and matches the current schema and rule set. Cache failures
// degrade to a fresh lint; they are never user-facing errors.
func cacheLookup(cache *DiskCache, file *source.File, fingerprint Digest) ([]CachedDiag, bool) {
	if cache == nil {
		return nil, false
	}
	var payload CachePayload
	ok, err := cache.Get(cacheKey(file, fingerprint), &payload)
	if err != nil || !ok {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Fingerprint != fingerprint {
		return nil, false
	}
	return payload.Diags, true
}

func cacheStore(cache *DiskCache, file *source.File, fingerprint Digest, diags []diag.Diagnostic) {
	if cache == nil {
		return
	}
	payload := &CachePayload{
		Schema:      diskCacheSchemaVersion,
		Fingerprint: fingerprint,
		Diags:       make([]CachedDiag, 0, len(diags)),
	}
	for _, d := range diags {
		payload.Diags = append(payload.Diags, CachedDiag{
			Severity: uint8(d.Severity),
			Code:     d.Code,
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	// Best effort: a failed write just means a re-lint next time.
	_ = cache.Put(cacheKey(file, fingerprint), payload)
}
