package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkeep/internal/domain"
	"passkeep/internal/store"
)

func TestSnapshot_RoundTripKeepsOrder(t *testing.T) {
	sites := []store.SiteRecord{
		{Name: "zeta.example", Secrets: []string{"pw1", "pw2", "pw1"}},
		{Name: "Alpha", Secrets: []string{`q"uote\<&>`}},
		{Name: "alpha", Secrets: []string{"ünïcødé"}},
	}

	data, err := store.EncodeSnapshot(sites)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)

	got, err := store.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, sites, got)
}

func TestSnapshot_EmptyStore(t *testing.T) {
	data, err := store.EncodeSnapshot(nil)
	require.NoError(t, err)

	got, err := store.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSnapshot_LegacyMapping(t *testing.T) {
	legacy := []byte(`{"siteB": ["pw3"], "siteA": ["pw1", "pw2"], "version": ["not-a-number"]}`)

	got, err := store.DecodeSnapshot(legacy)
	require.NoError(t, err)
	assert.Equal(t, []store.SiteRecord{
		{Name: "siteB", Secrets: []string{"pw3"}},
		{Name: "siteA", Secrets: []string{"pw1", "pw2"}},
		{Name: "version", Secrets: []string{"not-a-number"}},
	}, got)
}

func TestSnapshot_UnsupportedVersionFailsClosed(t *testing.T) {
	doc := []byte(`{"version": 2, "checksum": "", "sites": {}}`)

	_, err := store.DecodeSnapshot(doc)
	assert.ErrorIs(t, err, domain.ErrUnsupportedVersion)
	assert.ErrorIs(t, err, domain.ErrCorruptStorage)
}

func TestSnapshot_ChecksumMismatch(t *testing.T) {
	data, err := store.EncodeSnapshot([]store.SiteRecord{{Name: "github.com", Secrets: []string{"correct-horse"}}})
	require.NoError(t, err)

	tampered := []byte(strings.Replace(string(data), "correct-horse", "correct-house", 1))
	_, err = store.DecodeSnapshot(tampered)
	assert.ErrorIs(t, err, domain.ErrCorruptStorage)
	assert.Contains(t, err.Error(), "checksum")
}

func TestSnapshot_CorruptInputs(t *testing.T) {
	cases := map[string]string{
		"empty":            ``,
		"not json":         `not json at all`,
		"truncated":        `{"a": ["1"`,
		"array top level":  `["a"]`,
		"null":             `null`,
		"string password":  `{"a": "pw"}`,
		"number password":  `{"a": [1]}`,
		"empty list":       `{"a": []}`,
		"null list":        `{"a": null}`,
		"empty site":       `{"": ["pw"]}`,
		"blank password":   `{"a": ["  "]}`,
		"duplicate site":   `{"a": ["1"], "a": ["2"]}`,
		"version zero":     `{"version": 0, "checksum": "", "sites": {}}`,
		"missing sites":    `{"version": 1, "checksum": ""}`,
		"sites not object": `{"version": 1, "checksum": "", "sites": []}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.DecodeSnapshot([]byte(input))
			assert.ErrorIs(t, err, domain.ErrCorruptStorage)
		})
	}
}

func TestSnapshot_EncodeRejectsInvalidUTF8(t *testing.T) {
	for _, rec := range []store.SiteRecord{
		{Name: "site", Secrets: []string{"ok", "pw\xff"}},
		{Name: "\xfe", Secrets: []string{"ok"}},
	} {
		_, err := store.EncodeSnapshot([]store.SiteRecord{rec})
		assert.ErrorIs(t, err, domain.ErrInvalidUTF8)
	}
}
