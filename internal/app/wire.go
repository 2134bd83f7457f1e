package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"passkeep/internal/domain"
	"passkeep/internal/logging"
	"passkeep/internal/store"
	"passkeep/internal/store/sqlite"
	"passkeep/internal/vault"
)

// Wire bundles the logger, storage backend and credential store for the CLI
// and the MCP server.
type Wire struct {
	Config   Config
	Log      logging.Logger
	Backend  domain.StorageBackend
	Store    *vault.Store
	Location string // snapshot file or database path

	closer io.Closer
}

// WireOption adjusts NewWire.
type WireOption func(*wireOptions)

type wireOptions struct {
	logOut io.Writer
}

// WithLogOutput sends log output to w instead of stderr.
func WithLogOutput(w io.Writer) WireOption {
	return func(o *wireOptions) { o.logOut = w }
}

// NewWire constructs the dependency graph from cfg and loads the store.
func NewWire(ctx context.Context, cfg Config, opts ...WireOption) (*Wire, error) {
	o := wireOptions{logOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.New(o.logOut, cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return nil, err
	}

	w := &Wire{Config: cfg, Log: log}
	var backend domain.StorageBackend
	switch cfg.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, fmt.Errorf("create home: %w", err)
		}
		w.Location = filepath.Join(cfg.Home, sqlite.DefaultFilename)
		db, err := sqlite.Open(ctx, w.Location)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", w.Location, err)
		}
		b := sqlite.NewBackend(db)
		backend, w.closer = b, b
	default:
		fb := store.NewFileBackend(filepath.Join(cfg.Home, store.DefaultFilename))
		backend, w.Location = fb, fb.Path()
	}
	w.Backend = store.WithTimeout(backend, cfg.IOTimeout)

	log.Debug().Str("backend", cfg.Backend).Str("location", w.Location).Msg("loading credential store")
	s, err := vault.Load(ctx, w.Backend, vault.WithLogger(log.With().Str("component", "vault").Logger()))
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%s: %w", w.Location, err)
	}
	w.Store = s
	return w, nil
}

// Close releases the storage backend.
func (w *Wire) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}
