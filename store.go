package wmf

import (
	"io"
	"sync"
)

// Store holds one parsed metafile: it is read once and replayed any
// number of times.
//
// Read is not reentrant. A second Read while one is running fails with
// ErrBusy, and a Read after a successful one fails with ErrAlreadyRead.
// Replay and Bounds may be called concurrently once Read has returned.
type Store struct {
	mu      sync.Mutex
	reading bool
	mf      *Metafile
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Read parses a metafile from r into the store. A failed Read leaves
// the store empty so it can be retried.
func (s *Store) Read(r io.Reader) error {
	s.mu.Lock()
	switch {
	case s.reading:
		s.mu.Unlock()
		return ErrBusy
	case s.mf != nil:
		s.mu.Unlock()
		return ErrAlreadyRead
	}
	s.reading = true
	s.mu.Unlock()

	mf, err := Parse(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reading = false
	if err != nil {
		return err
	}
	s.mf = mf
	return nil
}

// IsReading reports whether a Read is in progress.
func (s *Store) IsReading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reading
}

// Metafile returns the parsed metafile, or nil before a successful Read.
func (s *Store) Metafile() *Metafile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mf
}

// Replay draws the stored metafile on surface with fresh replay state.
func (s *Store) Replay(surface Surface, opts ...Option) error {
	mf := s.Metafile()
	if mf == nil {
		return ErrNotRead
	}
	return Replay(mf, surface, opts...)
}

// Bounds measures the painted content of the stored metafile.
func (s *Store) Bounds(opts ...Option) (Rect, bool, error) {
	mf := s.Metafile()
	if mf == nil {
		return Rect{}, false, ErrNotRead
	}
	r, ok := MeasureBounds(mf, opts...)
	return r, ok, nil
}
