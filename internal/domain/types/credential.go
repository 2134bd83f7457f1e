package types

// Credential is a secret stored under a site.
type Credential struct {
	Secret string `json:"secret"`
}

// String returns the secret.
func (c Credential) String() string { return c.Secret }

// Entry is a single (site, credential) pair as produced by a listing.
type Entry struct {
	Site       string     `json:"site"`
	Credential Credential `json:"credential"`
}
