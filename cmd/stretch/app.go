package main

import (
	"fmt"
	"io"
	"time"

	"github.com/CodexForgeBR/stretch/internal/activity"
	"github.com/CodexForgeBR/stretch/internal/catalog"
	"github.com/CodexForgeBR/stretch/internal/config"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/routine"
	"github.com/CodexForgeBR/stretch/internal/storage"
)

// app carries the loaded configuration and data shared by every command.
type app struct {
	out io.Writer
	in  io.Reader
	now func() time.Time

	cfg       *config.Config
	store     *storage.Store
	stretches *catalog.Catalog
	routines  *routine.Store
	log       *activity.Log
}

func (a *app) open(cfg *config.Config) error {
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}

	stretches := catalog.Default()
	if cfg.CatalogFile != "" {
		stretches, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}

	store := storage.New(dir)

	var routines []routine.Routine
	if _, err := store.Load(routine.StorageKey, &routines); err != nil {
		return fmt.Errorf("load routines: %w", err)
	}
	var entries []activity.Entry
	if _, err := store.Load(activity.StorageKey, &entries); err != nil {
		return fmt.Errorf("load activity log: %w", err)
	}

	a.cfg = cfg
	a.store = store
	a.stretches = stretches
	a.routines = routine.NewStore(routines)
	a.log = activity.NewLog(entries, activity.Options{
		Routines:  a.routines,
		Stretches: stretches,
		Now:       a.now,
	})

	logging.Debugf("data dir %s: %d stretches, %d routines, %d log entries",
		dir, stretches.Len(), a.routines.Len(), a.log.Len())
	return nil
}

func (a *app) saveRoutines() error {
	if err := a.store.Save(routine.StorageKey, a.routines.List()); err != nil {
		return fmt.Errorf("save routines: %w", err)
	}
	return nil
}

func (a *app) saveLog() error {
	if err := a.store.Save(activity.StorageKey, a.log.Entries()); err != nil {
		return fmt.Errorf("save activity log: %w", err)
	}
	return nil
}

func (a *app) today() string {
	return activity.DateKey(a.now())
}
