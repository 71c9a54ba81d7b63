package security

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint("secret-token")
	b := Fingerprint("secret-token")
	c := Fingerprint("other-token")

	assert.Len(t, a, fingerprintLen)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotContains(t, a, "secret")
	assert.Empty(t, Fingerprint(""))
}

func TestRedactQuery(t *testing.T) {
	v := url.Values{
		"token": {"s3cr3t"},
		"f":     {"json"},
	}

	got := RedactQuery(v, "token", "missing")

	require.Len(t, got["token"], 1)
	assert.True(t, strings.HasPrefix(got.Get("token"), FingerprintPrefix))
	assert.Equal(t, FingerprintPrefix+Fingerprint("s3cr3t"), got.Get("token"))
	assert.Equal(t, "json", got.Get("f"))
	assert.Equal(t, "s3cr3t", v.Get("token"), "input must not be modified")
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://api.example.com/api/geo/places/?token=s3cr3t&limit=10")
	require.NoError(t, err)

	got := RedactURL(u, "token")

	assert.NotContains(t, got, "s3cr3t")
	assert.Contains(t, got, "limit=10")
	assert.Contains(t, got, "/api/geo/places/")
	assert.Equal(t, "token=s3cr3t&limit=10", u.RawQuery)
	assert.Empty(t, RedactURL(nil))
}
