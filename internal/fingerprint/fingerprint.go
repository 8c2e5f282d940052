// Package fingerprint derives stable content identifiers from canonical
// source URLs. The fingerprint is the single source of identity across the
// fetch, cache and offline-store layers: two fetches of the same URL always
// resolve to the same key, which is what makes upsert-based deduplication work.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the lowercase hex SHA-256 digest of the URL's UTF-8 bytes.
func Fingerprint(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
