package vault

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"passkeep/internal/domain"
	"passkeep/internal/store"
)

// Store is the credential store. It is safe for concurrent use within one
// process.
type Store struct {
	backend domain.StorageBackend
	log     zerolog.Logger

	mu        sync.Mutex // serializes mutations
	committed atomic.Pointer[state]
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Load reads the snapshot from backend. A backend with no snapshot yields an
// empty store. Invalid bytes are reported as domain.ErrCorruptStorage.
func Load(ctx context.Context, backend domain.StorageBackend, opts ...Option) (*Store, error) {
	s := &Store{backend: backend, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	data, err := backend.ReadSnapshot(ctx)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.committed.Store(emptyState())
		s.log.Debug().Msg("no snapshot, starting empty")
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	records, err := store.DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	st := fromRecords(records)
	s.committed.Store(st)
	s.log.Debug().Int("sites", len(st.order)).Int("count", st.count()).Msg("snapshot loaded")
	return s, nil
}

// Add appends secret to site's credentials and persists the result. The
// values are stored exactly as given; only blank or non-UTF-8 input is
// rejected.
func (s *Store) Add(ctx context.Context, site, secret string) error {
	if err := validate("site", site); err != nil {
		return err
	}
	if err := validate("password", secret); err != nil {
		return err
	}

	return s.commit(ctx, func(next *state) error {
		next.add(site, secret)
		return nil
	}, func(next *state) {
		s.log.Debug().Str("site", site).Int("count", len(next.sites[site])).Msg("credential added")
	})
}

func validate(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Field: field}
	}
	if !utf8.ValidString(value) {
		return &domain.ValidationError{Field: field, Err: domain.ErrInvalidUTF8}
	}
	return nil
}

// Remove deletes the first credential under site whose secret equals secret
// and persists the result. A site left without credentials is dropped.
func (s *Store) Remove(ctx context.Context, site, secret string) error {
	return s.commit(ctx, func(next *state) error {
		return next.remove(site, secret)
	}, func(next *state) {
		s.log.Debug().Str("site", site).Int("count", len(next.sites[site])).Msg("credential removed")
	})
}

// commit applies mutate to a copy of the committed state, persists the copy
// and then publishes it. On any error the committed state is left as is.
func (s *Store) commit(ctx context.Context, mutate func(*state) error, logged func(*state)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.committed.Load().clone()
	if err := mutate(next); err != nil {
		return err
	}

	data, err := store.EncodeSnapshot(next.records())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.backend.WriteSnapshot(ctx, data); err != nil {
		s.log.Debug().Err(err).Msg("snapshot write failed, keeping previous state")
		return err
	}

	s.committed.Store(next)
	logged(next)
	return nil
}

// List returns every (site, credential) pair, sites in insertion order and
// credentials in the order they were added. Each iteration reads the state
// committed at the time it starts.
func (s *Store) List() iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		st := s.committed.Load()
		for _, site := range st.order {
			for _, c := range st.sites[site] {
				if !yield(domain.Entry{Site: site, Credential: c}) {
					return
				}
			}
		}
	}
}

// Sites returns the site names in insertion order.
func (s *Store) Sites() []string {
	return slices.Clone(s.committed.Load().order)
}

// Credentials returns the credentials stored under site.
func (s *Store) Credentials(site string) ([]domain.Credential, error) {
	creds, ok := s.committed.Load().sites[site]
	if !ok {
		return nil, &domain.NotFoundError{Site: site, Err: domain.ErrSiteNotFound}
	}
	return slices.Clone(creds), nil
}

// Len returns the total number of stored credentials.
func (s *Store) Len() int { return s.committed.Load().count() }
