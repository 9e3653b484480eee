package application

import (
	"sync"
	"sync/atomic"

	"courseplanner/internal/domain"
)

// Session owns the current catalog. Loads are serialized and publish a fresh
// catalog in one step; readers keep whatever catalog they fetched, so they
// never observe a mix of two loads.
type Session struct {
	loadMu  sync.Mutex
	catalog atomic.Pointer[domain.Catalog]
}

// NewSession creates a session holding an empty catalog
func NewSession() *Session {
	s := &Session{}
	s.catalog.Store(domain.NewCatalog())
	return s
}

// Catalog returns the currently published catalog
func (s *Session) Catalog() *domain.Catalog {
	return s.catalog.Load()
}

// Loaded reports whether the current catalog holds any course
func (s *Session) Loaded() bool {
	return s.Catalog().Len() > 0
}

// Replace publishes cat as the current catalog
func (s *Session) Replace(cat *domain.Catalog) {
	s.catalog.Store(cat)
}

// BeginLoad blocks until no other load is running. The returned func ends the load.
func (s *Session) BeginLoad() func() {
	s.loadMu.Lock()
	return s.loadMu.Unlock
}
