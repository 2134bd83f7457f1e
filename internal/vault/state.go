package vault

import (
	"slices"

	"passkeep/internal/domain"
	"passkeep/internal/store"
)

// state is an immutable view of the store. Mutations work on a clone.
type state struct {
	order []string
	sites map[string][]domain.Credential
}

func emptyState() *state {
	return &state{sites: make(map[string][]domain.Credential)}
}

func (s *state) clone() *state {
	c := &state{
		order: slices.Clone(s.order),
		sites: make(map[string][]domain.Credential, len(s.sites)),
	}
	for site, creds := range s.sites {
		c.sites[site] = slices.Clone(creds)
	}
	return c
}

func (s *state) add(site, secret string) {
	if _, ok := s.sites[site]; !ok {
		s.order = append(s.order, site)
	}
	s.sites[site] = append(s.sites[site], domain.Credential{Secret: secret})
}

func (s *state) remove(site, secret string) error {
	creds, ok := s.sites[site]
	if !ok {
		return &domain.NotFoundError{Site: site, Err: domain.ErrSiteNotFound}
	}
	i := slices.IndexFunc(creds, func(c domain.Credential) bool { return c.Secret == secret })
	if i < 0 {
		return &domain.NotFoundError{Site: site, Err: domain.ErrPasswordNotFound}
	}

	creds = slices.Delete(creds, i, i+1)
	if len(creds) > 0 {
		s.sites[site] = creds
		return nil
	}
	delete(s.sites, site)
	s.order = slices.DeleteFunc(s.order, func(name string) bool { return name == site })
	return nil
}

func (s *state) count() int {
	n := 0
	for _, creds := range s.sites {
		n += len(creds)
	}
	return n
}

func (s *state) records() []store.SiteRecord {
	out := make([]store.SiteRecord, 0, len(s.order))
	for _, site := range s.order {
		creds := s.sites[site]
		secrets := make([]string, len(creds))
		for i, c := range creds {
			secrets[i] = c.Secret
		}
		out = append(out, store.SiteRecord{Name: site, Secrets: secrets})
	}
	return out
}

func fromRecords(records []store.SiteRecord) *state {
	s := emptyState()
	for _, r := range records {
		for _, secret := range r.Secrets {
			s.add(r.Name, secret)
		}
	}
	return s
}
