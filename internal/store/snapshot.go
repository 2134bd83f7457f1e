package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"passkeep/internal/crypto"
	"passkeep/internal/domain"
)

const (
	// The current snapshot format version. Version 0 is the bare
	// site -> passwords mapping with no envelope.
	snapshotFormatVersion = 1
)

// SiteRecord is one site and its passwords in store order.
type SiteRecord struct {
	Name    string
	Secrets []string
}

// document is the on-disk JSON envelope.
type document struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum"`
	Sites    json.RawMessage `json:"sites"`
}

// EncodeSnapshot serializes sites into the current snapshot format. Site keys
// are written in the given order.
func EncodeSnapshot(sites []SiteRecord) ([]byte, error) {
	raw, err := encodeSites(sites)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(document{
		Version:  snapshotFormatVersion,
		Checksum: crypto.Checksum(raw),
		Sites:    raw,
	}, "", "  ")
}

// DecodeSnapshot parses a snapshot written by EncodeSnapshot or a legacy bare
// mapping. Any problem is reported as a domain.CorruptStorageError.
func DecodeSnapshot(data []byte) ([]SiteRecord, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, corrupt("malformed snapshot", err)
	}

	v, versioned := top["version"]
	if !versioned || !isNumber(v) {
		return decodeSites(data)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corrupt("malformed snapshot envelope", err)
	}
	if doc.Version > snapshotFormatVersion {
		return nil, corrupt(fmt.Sprintf("version %d", doc.Version), domain.ErrUnsupportedVersion)
	}
	if doc.Version < 1 {
		return nil, corrupt(fmt.Sprintf("invalid version %d", doc.Version), nil)
	}
	if len(doc.Sites) == 0 {
		return nil, corrupt("missing sites", nil)
	}

	sites, err := decodeSites(doc.Sites)
	if err != nil {
		return nil, err
	}
	canonical, err := encodeSites(sites)
	if err != nil {
		return nil, corrupt("re-encode sites", err)
	}
	if !crypto.VerifyChecksum(canonical, doc.Checksum) {
		return nil, corrupt("checksum mismatch", nil)
	}
	return sites, nil
}

// encodeSites writes sites as a JSON object whose keys keep slice order.
func encodeSites(sites []SiteRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range sites {
		if err := checkUTF8(s); err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		secrets := s.Secrets
		if secrets == nil {
			secrets = []string{}
		}
		v, err := json.Marshal(secrets)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// checkUTF8 rejects invalid UTF-8. json.Marshal rewrites such bytes, and the
// checksum would no longer match on load.
func checkUTF8(s SiteRecord) error {
	if !utf8.ValidString(s.Name) {
		return fmt.Errorf("site name: %w", domain.ErrInvalidUTF8)
	}
	for _, secret := range s.Secrets {
		if !utf8.ValidString(secret) {
			return fmt.Errorf("password for site %q: %w", s.Name, domain.ErrInvalidUTF8)
		}
	}
	return nil
}

// decodeSites reads a site -> passwords object, preserving key order.
func decodeSites(raw []byte) ([]SiteRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, corrupt("read sites", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, corrupt("sites is not an object", nil)
	}

	var sites []SiteRecord
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, corrupt("read site name", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, corrupt("site name is not a string", nil)
		}
		if name == "" {
			return nil, corrupt("empty site name", nil)
		}
		if seen[name] {
			return nil, corrupt(fmt.Sprintf("duplicate site %q", name), nil)
		}
		seen[name] = true

		var secrets []string
		if err := dec.Decode(&secrets); err != nil {
			return nil, corrupt(fmt.Sprintf("passwords for site %q", name), err)
		}
		if len(secrets) == 0 {
			return nil, corrupt(fmt.Sprintf("site %q has no passwords", name), nil)
		}
		for _, s := range secrets {
			if strings.TrimSpace(s) == "" {
				return nil, corrupt(fmt.Sprintf("site %q has an empty password", name), nil)
			}
		}
		sites = append(sites, SiteRecord{Name: name, Secrets: secrets})
	}

	if _, err := dec.Token(); err != nil {
		return nil, corrupt("read sites end", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, corrupt("trailing data after sites", err)
	}
	return sites, nil
}

// isNumber reports whether raw holds a JSON number literal.
func isNumber(raw json.RawMessage) bool {
	r := bytes.TrimSpace(raw)
	return len(r) > 0 && (r[0] == '-' || (r[0] >= '0' && r[0] <= '9'))
}

func corrupt(reason string, err error) error {
	return &domain.CorruptStorageError{Reason: reason, Err: err}
}
