// Package app wires configuration into the stores and services shared by
// the gateway and the CLI.
package app

import (
	"context"
	"log"

	"github.com/mind-engage/mindengage-mcq/internal/config"
	"github.com/mind-engage/mindengage-mcq/internal/db"
	"github.com/mind-engage/mindengage-mcq/internal/eventlog"
	"github.com/mind-engage/mindengage-mcq/internal/ingest"
	"github.com/mind-engage/mindengage-mcq/internal/question"
	"github.com/mind-engage/mindengage-mcq/internal/storage"
)

type App struct {
	Config   config.Config
	Store    question.Store
	Blobs    storage.BlobStore // nil when uploads are not kept
	Events   eventlog.Appender
	EventLog eventlog.Reader // nil unless events are persisted
	Ingest   *ingest.Service

	opened  *question.Opened
	closers []func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	opened, err := question.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Store: opened.Store, Events: eventlog.Discard, opened: opened}

	switch {
	case opened.DB != nil:
		repo := eventlog.NewSQLRepo(opened.DB)
		a.Events, a.EventLog = repo, repo
	case cfg.EnableEventLog:
		drv, err := db.ParseDriver(cfg.DBDriver)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		dbh, err := db.Open(ctx, drv, cfg.DBDSN)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		repo := eventlog.NewSQLRepo(dbh)
		a.Events, a.EventLog = repo, repo
		a.closers = append(a.closers, dbh.Close)
	}

	if cfg.KeepUploads {
		bs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.Blobs = bs
	}

	a.Ingest = &ingest.Service{Store: a.Store, Blobs: a.Blobs, Events: a.Events}
	if opened.Backend == config.BackendMemory {
		log.Printf("using in-memory question store; data is lost on restart")
	}
	return a, nil
}

func (a *App) Close(ctx context.Context) {
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Printf("close: %v", err)
		}
	}
	if err := a.opened.Close(ctx); err != nil {
		log.Printf("close store: %v", err)
	}
}
