// Package security keeps API secrets out of logs and error messages.
package security

import (
	"encoding/hex"
	"net/url"

	"golang.org/x/crypto/blake2b"
)

// FingerprintPrefix marks a value that was replaced by its fingerprint.
const FingerprintPrefix = "fp:"

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 12

// Fingerprint returns a short, stable identifier for secret.
// Two fingerprints match iff the secrets are (with overwhelming probability)
// the same, but the secret cannot be recovered from it.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// RedactQuery returns a copy of v where every value under one of keys is
// replaced by its fingerprint. v itself is left untouched.
func RedactQuery(v url.Values, keys ...string) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	for _, k := range keys {
		vals, ok := out[k]
		if !ok {
			continue
		}
		for i, val := range vals {
			vals[i] = FingerprintPrefix + Fingerprint(val)
		}
	}
	return out
}

// RedactURL returns u as a string with the query keys redacted.
func RedactURL(u *url.URL, keys ...string) string {
	if u == nil {
		return ""
	}
	c := *u
	c.RawQuery = RedactQuery(u.Query(), keys...).Encode()
	return c.String()
}
