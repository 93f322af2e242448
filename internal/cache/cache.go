// Package cache remembers content digests in memory so unchanged scripts
// are not analyzed twice within a process.
package cache

import (
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
)

// Digest is a 16 hex character xxhash of b. It is a change detector, not a
// security hash; reports use SHA-256.
func Digest(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// DB maps a script path to the digest of the content last analyzed.
type DB struct {
	mu      sync.Mutex
	Entries map[string]string
}

func New() *DB { return &DB{Entries: map[string]string{}} }

// Changed records the digest of b for path and reports whether it differs
// from the previous one. The first sighting of a path counts as a change.
func (db *DB) Changed(path string, b []byte) bool {
	d := Digest(b)
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	if prev, ok := db.Entries[path]; ok && prev == d {
		return false
	}
	db.Entries[path] = d
	return true
}

// Forget drops path so the next Changed call reports a change.
func (db *DB) Forget(path string) {
	db.mu.Lock()
	delete(db.Entries, path)
	db.mu.Unlock()
}
