package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/joestump/bookie/internal/config"
	"github.com/joestump/bookie/internal/db"
	"github.com/joestump/bookie/internal/logger"
	"github.com/joestump/bookie/internal/render"
	"github.com/joestump/bookie/internal/store"
)

// app is everything a command needs: an initialized store and a renderer
// bound to the command's output.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	db        *sqlx.DB
	bookmarks *store.BookmarkStore
	tags      *store.TagStore
	out       *render.Renderer
}

// openApp loads configuration, opens the store and brings its schema up to
// date. A schema failure closes the handle and is returned; no command runs
// against a half-initialized store.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Format: cfg.Log.Format,
		Level:  logger.ParseLevel(cfg.Log.Level),
	})

	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database, cfg.DB.Driver, log.Logger); err != nil {
		_ = database.Close()
		return nil, err
	}
	log.Debug("store ready", "driver", cfg.DB.Driver, "dsn", cfg.DB.DSN)

	tags := store.NewTagStore(database)
	return &app{
		cfg:       cfg,
		log:       log,
		db:        database,
		bookmarks: store.NewBookmarkStore(database, tags, store.WithLogger(log.With("component", "store"))),
		tags:      tags,
		out:       render.New(cmd.OutOrStdout()),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
