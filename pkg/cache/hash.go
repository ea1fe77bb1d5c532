package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key by JSON-encoding the layout inputs
// and hashing the result: "prefix:<64 hex chars>". Struct fields marshal in
// declaration order, so equal inputs always produce the same key, and the
// full SHA-256 leaves no practical collision room between distinct ones.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex-encoded SHA-256 of data. The file backend reuses it
// to map keys to filesystem-safe names.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
