package store

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"helpboard/pkg/logger"
)

// Pebble is a KV backed by a Pebble database on disk.
type Pebble struct {
	db *pebble.DB
}

// OpenPebble opens (or creates) a Pebble database at the given path.
func OpenPebble(path string) (*Pebble, error) {
	logger.Log.Info("opening_pebble_db", "path", path)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Log.Error("pebble_open_failed", "path", path, "err", err)
		return nil, err
	}
	logger.Log.Info("pebble_opened", "path", path)
	return &Pebble{db: db}, nil
}

func (p *Pebble) GetItem(key string) (string, bool, error) {
	if p.db == nil {
		return "", false, fmt.Errorf("pebble not opened")
	}
	v, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	out := string(v)
	if err := closer.Close(); err != nil {
		return "", false, err
	}
	return out, true, nil
}

func (p *Pebble) SetItem(key, value string) error {
	if p.db == nil {
		return fmt.Errorf("pebble not opened")
	}
	if err := p.db.Set([]byte(key), []byte(value), pebble.Sync); err != nil {
		logger.Log.Error("pebble_set_failed", "key", key, "err", err)
		return err
	}
	return nil
}

// Close closes the underlying database if it is still open.
func (p *Pebble) Close() error {
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	if err != nil {
		return err
	}
	logger.Log.Info("pebble_closed")
	return nil
}
