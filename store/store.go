package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
)

// ErrConflict is returned by Submit when the submitted document was built
// from a snapshot that is no longer the current revision. Nothing was
// written; the caller has to redo the whole snapshot -> compute -> submit
// cycle if it still wants the change.
var ErrConflict = errors.New("store: document revision conflict")

type snapshotReq struct {
	reply chan *models.Document
}

type submitReq struct {
	doc   *models.Document
	reply chan error
}

// Store owns the single persisted document. A dedicated writer goroutine
// holds the authoritative in-memory copy and its revision counter; reads
// and writes both go through its channels, which serializes submissions
// into one global FIFO order without any locks. Snapshots come back as deep
// copies, so callers can never observe a half-built document and can mutate
// their copy freely.
type Store struct {
	path      string
	snapshots chan snapshotReq
	submits   chan submitReq
	quit      chan struct{}
}

// Open loads the document at path, initializing it to the empty document if
// the file does not exist yet, and starts the writer goroutine. An error
// here is the only fatal condition in the system.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	doc, err := load(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		path:      path,
		snapshots: make(chan snapshotReq),
		submits:   make(chan submitReq),
		quit:      make(chan struct{}),
	}
	go s.run(doc)
	return s, nil
}

func load(path string) (*models.Document, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		doc := &models.Document{
			Users:    []models.User{},
			Products: []models.Product{},
			Orders:   []models.Order{},
		}
		if err := persist(path, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// persist writes the document to a fresh temp file in the same directory
// and renames it over the data file. A failed write leaves the previous
// durable state untouched.
func persist(path string, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func (s *Store) run(doc *models.Document) {
	doc.Revision = 1
	for {
		select {
		case req := <-s.snapshots:
			req.reply <- doc.Clone()
		case req := <-s.submits:
			if req.doc.Revision != doc.Revision {
				req.reply <- ErrConflict
				continue
			}
			next := req.doc.Clone()
			next.Revision = doc.Revision + 1
			if err := persist(s.path, next); err != nil {
				req.reply <- err
				continue
			}
			doc = next
			req.reply <- nil
		case <-s.quit:
			return
		}
	}
}

// Snapshot returns a deep, independent copy of the current document. The
// caller may mutate it freely; changes only reach the store through Submit.
func (s *Store) Snapshot() *models.Document {
	req := snapshotReq{reply: make(chan *models.Document, 1)}
	s.snapshots <- req
	return <-req.reply
}

// Submit replaces the durable document with next. Submissions are persisted
// one at a time in arrival order. A next document built from a stale
// snapshot yields ErrConflict; a disk failure is surfaced to this caller
// only, with the previous durable state intact. After a successful Submit
// every later Snapshot observes the new state or a newer one.
func (s *Store) Submit(next *models.Document) error {
	req := submitReq{doc: next, reply: make(chan error, 1)}
	s.submits <- req
	return <-req.reply
}

// Close stops the writer goroutine. Close must be the last call made on the
// store.
func (s *Store) Close() {
	close(s.quit)
}

// Path returns the location of the durable document file.
func (s *Store) Path() string { return s.path }
