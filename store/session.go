package store

import (
	"sync"
	"time"

	"github.com/chronoshop/storefront-api/models"
)

// DefaultSessionTTL bounds how long a cached profile is served before the
// next read goes back to the database.
const DefaultSessionTTL = 5 * time.Minute

// UserFetcher loads a user record from the backing source.
type UserFetcher func(userID string) (*models.User, error)

type sessionEntry struct {
	user      *models.User
	fetchedAt time.Time
}

// SessionCache is a time-boxed cache of user profiles keyed by user id.
// Expiry is wall-clock based from the last fetch, not sliding: reads inside
// the window never touch the fetcher, the first read after it always does.
// It is constructed explicitly and injected, not held as a package global.
type SessionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	fetch   UserFetcher
	entries map[string]sessionEntry
}

func NewSessionCache(fetch UserFetcher, ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionCache{
		ttl:     ttl,
		now:     time.Now,
		fetch:   fetch,
		entries: make(map[string]sessionEntry),
	}
}

// SetClock replaces the time source. Tests only.
func (s *SessionCache) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Put stores a freshly authenticated user with a new timestamp. Login and
// registration call this so the first profile read is free.
func (s *SessionCache) Put(user *models.User) {
	if user == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[user.ID] = sessionEntry{user: user, fetchedAt: s.now()}
}

// CurrentUser returns the cached user when the entry is inside the TTL
// window and forceRefresh is false; otherwise it fetches, caches, and
// returns the fresh record. When the fetch fails it falls back to the last
// known user if there is one — read-only consumers never see the error.
// The second return is false only when no user could be produced at all.
func (s *SessionCache) CurrentUser(userID string, forceRefresh bool) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if ok && !forceRefresh && s.now().Sub(entry.fetchedAt) < s.ttl {
		return entry.user, true
	}

	user, err := s.fetch(userID)
	if err != nil || user == nil {
		if ok {
			return entry.user, true // stale but known
		}
		return nil, false
	}
	s.entries[userID] = sessionEntry{user: user, fetchedAt: s.now()}
	return user, true
}

// Invalidate drops the cached entry so the next read refetches. Called on
// logout and after profile mutations.
func (s *SessionCache) Invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Clear drops every entry.
func (s *SessionCache) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]sessionEntry)
}
