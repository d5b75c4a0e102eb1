package question

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/mind-engage/mindengage-mcq/internal/config"
	"github.com/mind-engage/mindengage-mcq/internal/db"
)

// Opened is a store plus whatever it holds open. DB is set for the sql
// backend so other components can share the handle.
type Opened struct {
	Store   Store
	Backend config.Backend
	DB      *sql.DB
	closers []func(context.Context) error
}

func (o *Opened) Close(ctx context.Context) error {
	var first error
	for _, c := range o.closers {
		if err := c(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open builds the store the configuration selects.
func Open(ctx context.Context, cfg config.Config) (*Opened, error) {
	backend := cfg.ResolvedBackend()
	o := &Opened{Backend: backend}
	switch backend {
	case config.BackendMemory:
		o.Store = NewMemory()
	case config.BackendFile:
		o.Store = NewFile(cfg.DataFile)
	case config.BackendSQL:
		drv, err := db.ParseDriver(cfg.DBDriver)
		if err != nil {
			return nil, err
		}
		dbh, err := db.Open(ctx, drv, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		o.Store, o.DB = NewSQL(dbh), dbh
		o.closers = append(o.closers, closeFunc(dbh))
	case config.BackendMongo:
		m, err := DialMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		o.Store = m
		o.closers = append(o.closers, m.Close)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	return o, nil
}

func closeFunc(c io.Closer) func(context.Context) error {
	return func(context.Context) error { return c.Close() }
}
