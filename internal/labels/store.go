// Package labels stores user-assigned names for addresses in the debugged
// process. Labels take priority over provider symbols during name
// resolution.
package labels

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Label is one user-assigned name.
type Label struct {
	Address uint64
	Text    string
}

// Store is an in-memory label store. Unlike the symbol session it is shared
// across debugger subsystems, so it guards itself with a lock.
type Store struct {
	mu     sync.RWMutex
	byAddr map[uint64]string
	logger zerolog.Logger
}

// New creates an empty label store.
func New(logger zerolog.Logger) *Store {
	return &Store{
		byAddr: make(map[uint64]string),
		logger: logger.With().Str("component", "labels").Logger(),
	}
}

// Set assigns a label to an address, replacing any existing one.
func (s *Store) Set(addr uint64, text string) error {
	if text == "" {
		return fmt.Errorf("label text must not be empty")
	}

	s.mu.Lock()
	s.byAddr[addr] = text
	s.mu.Unlock()

	s.logger.Debug().Uint64("addr", addr).Str("label", text).Msg("Label set")
	return nil
}

// LabelAt returns the label at exactly addr.
func (s *Store) LabelAt(addr uint64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.byAddr[addr]
	return text, ok
}

// Delete removes the label at addr, reporting whether one existed.
func (s *Store) Delete(addr uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byAddr[addr]; !ok {
		return false
	}
	delete(s.byAddr, addr)
	return true
}

// All returns every label sorted by address.
func (s *Store) All() []Label {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Label, 0, len(s.byAddr))
	for addr, text := range s.byAddr {
		out = append(out, Label{Address: addr, Text: text})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Address < out[j].Address
	})
	return out
}

// Count returns the number of labels.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byAddr)
}
