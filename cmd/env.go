package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/config"
	"github.com/abhisek/infoquiz/internal/logging"
	"github.com/abhisek/infoquiz/internal/progress"
	"github.com/abhisek/infoquiz/internal/router"
	"github.com/abhisek/infoquiz/internal/store"
)

// env bundles the dependencies shared by the commands.
type env struct {
	cfg      config.Config
	logger   *slog.Logger
	catalog  *catalog.Catalog
	store    *store.Store // nil when ephemeral
	progress *progress.Store

	closers []io.Closer
}

// openEnv resolves configuration, opens the log, the catalog and storage.
func openEnv(cmd *cobra.Command) (*env, error) {
	e := &env{cfg: resolveConfig(cmd)}

	logger, logCloser, err := logging.Open(e.cfg.LogPath, slog.LevelInfo)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	e.logger = logger
	e.closers = append(e.closers, logCloser)

	if e.catalog, err = loadCatalog(e.cfg.CatalogPath); err != nil {
		e.Close()
		return nil, err
	}

	var kv progress.KV
	if e.cfg.Ephemeral {
		kv = progress.NewMemoryKV()
	} else {
		dbPath, err := resolveDBPath(e.cfg)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = st
		e.closers = append([]io.Closer{st}, e.closers...)
		kv = st.KVRepo()
		logger.Info("store opened", "path", dbPath)
	}

	e.progress = progress.NewStore(kv, logger)
	return e, nil
}

// newRouter hydrates progress and builds the screen router.
func (e *env) newRouter(ctx context.Context) *router.Router {
	opts := router.Options{
		Catalog:  e.catalog,
		Progress: e.progress.Load(ctx),
		Saver:    e.progress,
		Logger:   e.logger,
	}
	if e.store != nil {
		opts.Recorder = e.store.EventRepo()
	}
	return router.New(opts)
}

// Close releases resources in reverse order of acquisition.
func (e *env) Close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		c, err := catalog.Builtin()
		if err != nil {
			return nil, fmt.Errorf("load built-in catalog: %w", err)
		}
		return c, nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// resolveDBPath returns the configured database path, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
