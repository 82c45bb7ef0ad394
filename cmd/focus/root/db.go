package root

import (
	"context"
	"database/sql"

	"focusboard/internal/content"
	"focusboard/internal/engine"
	"focusboard/internal/random"
	"focusboard/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(dbFlag, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService wires the engine to the database and to the content proxy when
// FOCUSBOARD_PROXY_URL is set; otherwise everything is generated locally.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	rng, err := random.New()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	opts := []engine.Option{engine.WithRand(rng), engine.WithLogger(logger)}
	if cfg.ProxyURL != "" {
		opts = append(opts, engine.WithGenerator(content.NewClient(cfg.ProxyURL, cfg.UpstreamTimeout, logger)))
	} else {
		logger.Debug("no proxy configured, using local content")
	}
	kv := storage.NewSQLiteKV(db, cfg.Namespace)
	return engine.NewService(kv, opts...), cleanup, nil
}
