// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Named graph snapshots persisted in an embedded badger database.
// Layout:
//   - "meta/<name>" holds the YAML Info record.
//   - "doc/<name>"  holds the snapshot document.
//   Both keys of a name are always written and deleted in one transaction.

// Package store persists named weir graphs in an embedded badger database.
// Every save produces a new revision id.
package store

import (
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weir/snapshot"
	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

var (
	// ErrNotFound is returned for a name with no saved graph.
	ErrNotFound = errors.New("store: graph not found")

	// ErrInvalidName is returned for an empty graph name.
	ErrInvalidName = errors.New("store: invalid graph name")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store: closed")
)

const (
	metaPrefix = "meta/"
	docPrefix  = "doc/"
)

// Options configures Open.
type Options struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps everything in memory; nothing survives Close.
	InMemory bool

	// ReadOnly opens an existing database without write access.
	ReadOnly bool
}

// Info describes one saved graph.
type Info struct {
	Name     string
	Dim      int
	Revision uuid.UUID
	Saved    time.Time
	Vertices int
	Edges    int
}

// infoRecord is the stored form of Info.
type infoRecord struct {
	Dim      int       `yaml:"dim"`
	Revision string    `yaml:"revision"`
	Saved    time.Time `yaml:"saved"`
	Vertices int       `yaml:"vertices"`
	Edges    int       `yaml:"edges"`
}

// Store is a handle on an open database. It is safe for concurrent use; Close waits for
// running operations, and every later call returns ErrClosed.
type Store struct {
	mu sync.RWMutex // guards db; held shared by operations, exclusively by Close
	db *badger.DB
}

// Open opens (creating if needed) the database described by opts.
func Open(opts Options) (*Store, error) {
	dir := opts.Dir
	if opts.InMemory {
		dir = ""
	} else if dir == "" {
		return nil, errors.New("store: Dir must be specified unless InMemory is set")
	}

	dbOpts := badger.DefaultOptions(dir)
	dbOpts.InMemory = opts.InMemory
	dbOpts.ReadOnly = opts.ReadOnly && !opts.InMemory
	dbOpts.Logger = nil

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", dir)
	}
	klog.V(1).Infof("store: opened %q (in-memory=%v)", dir, opts.InMemory)

	return &Store{db: db}, nil
}

// Close releases the database. Calling Close twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return errors.Wrap(err, "store: close")
}

// Put stores doc under name and returns the new revision id.
func (s *Store) Put(name string, doc snapshot.Document) (uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return uuid.Nil, err
	}
	body, err := snapshot.Marshal(doc)
	if err != nil {
		return uuid.Nil, err
	}
	rev := uuid.New()
	meta, err := yaml.Marshal(infoRecord{
		Dim:      doc.Dim,
		Revision: rev.String(),
		Saved:    time.Now().UTC(),
		Vertices: len(doc.Vertices),
		Edges:    len(doc.Edges),
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "store: encode info")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(metaPrefix+name), meta); err != nil {
			return err
		}
		return txn.Set([]byte(docPrefix+name), body)
	})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "store: save %q", name)
	}
	klog.V(1).Infof("store: saved %q revision %s (%d vertices, %d edges)", name, rev, len(doc.Vertices), len(doc.Edges))

	return rev, nil
}

// Get returns the document and info saved under name, or ErrNotFound.
func (s *Store) Get(name string) (snapshot.Document, Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return snapshot.Document{}, Info{}, err
	}

	var (
		info Info
		body []byte
	)
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		if info, err = readInfo(txn, name); err != nil {
			return err
		}
		item, err := txn.Get([]byte(docPrefix + name))
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return snapshot.Document{}, Info{}, notFound(err, name)
	}

	doc, err := snapshot.Decode(body)
	if err != nil {
		return snapshot.Document{}, Info{}, errors.Wrapf(err, "store: %q", name)
	}

	return doc, info, nil
}

// Info returns the metadata saved under name, or ErrNotFound.
func (s *Store) Info(name string) (Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return Info{}, err
	}
	var info Info
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		info, err = readInfo(txn, name)
		return err
	})
	if err != nil {
		return Info{}, notFound(err, name)
	}

	return info, nil
}

// List returns the info of every saved graph, ordered by name.
func (s *Store) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	var out []Info
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(metaPrefix)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 16})
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := string(item.Key()[len(prefix):])
			var info Info
			err := item.Value(func(val []byte) error {
				var err error
				info, err = decodeInfo(name, val)
				return err
			})
			if err != nil {
				return err
			}
			out = append(out, info)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: list")
	}

	return out, nil
}

// Delete removes the graph saved under name, or returns ErrNotFound.
func (s *Store) Delete(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(metaPrefix + name)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(metaPrefix + name)); err != nil {
			return err
		}
		return txn.Delete([]byte(docPrefix + name))
	})
	if err != nil {
		return notFound(err, name)
	}
	klog.V(1).Infof("store: deleted %q", name)

	return nil
}

// Save exports g and stores it under name.
func Save[P vec.Vector[P]](s *Store, name string, g *weir.Graph[P]) (uuid.UUID, error) {
	return s.Put(name, snapshot.Export(g))
}

// Load restores the graph saved under name. The stored dimensionality must match P.
func Load[P vec.Vector[P]](s *Store, name string) (*weir.Graph[P], Info, error) {
	doc, info, err := s.Get(name)
	if err != nil {
		return nil, Info{}, err
	}
	g, err := snapshot.Restore[P](doc)
	if err != nil {
		return nil, Info{}, errors.Wrapf(err, "store: %q", name)
	}

	return g, info, nil
}

// check validates name; the caller holds s.mu.
func (s *Store) check(name string) error {
	if s.db == nil {
		return ErrClosed
	}
	if name == "" {
		return ErrInvalidName
	}

	return nil
}

func readInfo(txn *badger.Txn, name string) (Info, error) {
	item, err := txn.Get([]byte(metaPrefix + name))
	if err != nil {
		return Info{}, err
	}
	var info Info
	err = item.Value(func(val []byte) error {
		info, err = decodeInfo(name, val)
		return err
	})

	return info, err
}

func decodeInfo(name string, val []byte) (Info, error) {
	var rec infoRecord
	if err := yaml.Unmarshal(val, &rec); err != nil {
		return Info{}, errors.Wrapf(weir.ErrCorrupt, "store: info of %q: %v", name, err)
	}
	rev, err := uuid.Parse(rec.Revision)
	if err != nil {
		return Info{}, errors.Wrapf(weir.ErrCorrupt, "store: revision of %q: %v", name, err)
	}

	return Info{
		Name:     name,
		Dim:      rec.Dim,
		Revision: rev,
		Saved:    rec.Saved,
		Vertices: rec.Vertices,
		Edges:    rec.Edges,
	}, nil
}

// notFound maps badger's missing-key error onto ErrNotFound.
func notFound(err error, name string) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}

	return errors.Wrapf(err, "store: %q", name)
}
