package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashValue returns a stable hex digest of v's JSON encoding. Struct fields
// encode in declaration order, so equal values always hash the same.
func HashValue(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
