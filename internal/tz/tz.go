// Package tz resolves the IANA timezone a user's messages are
// interpreted in: explicit per-user preference, else a locale-code
// guess, else a fixed default.
package tz

import (
	"context"
	"strings"
	"sync"
	"time"
)

// FallbackZone is used when even the configured default is unusable.
const FallbackZone = "America/Sao_Paulo"

// PreferenceStore persists explicit per-user timezone choices. Backed by
// memory or by the SQLite repository; the resolver only needs these two
// operations.
type PreferenceStore interface {
	Timezone(ctx context.Context, userID string) (string, bool)
	SetTimezone(ctx context.Context, userID, zone string) error
}

// MemoryStore is a process-wide in-memory PreferenceStore. State is lost
// on restart.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Timezone(_ context.Context, userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	z, ok := s.m[userID]
	return z, ok
}

func (s *MemoryStore) SetTimezone(_ context.Context, userID, zone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = zone
	return nil
}

// Telegram language codes to a representative zone. Coarse on purpose:
// it only matters for users who never set an explicit preference.
var localeZones = map[string]string{
	"pt":    "America/Sao_Paulo",
	"pt-br": "America/Sao_Paulo",
	"pt-pt": "Europe/Lisbon",
	"en":    "America/New_York",
	"en-us": "America/New_York",
	"en-gb": "Europe/London",
	"es":    "Europe/Madrid",
	"es-ar": "America/Argentina/Buenos_Aires",
	"es-mx": "America/Mexico_City",
}

// Resolver picks the zone for a user.
type Resolver struct {
	store PreferenceStore
	def   string
}

// New creates a Resolver over the given preference store. An empty or
// invalid defaultZone falls back to America/Sao_Paulo.
func New(store PreferenceStore, defaultZone string) *Resolver {
	if defaultZone == "" {
		defaultZone = FallbackZone
	} else if _, err := time.LoadLocation(defaultZone); err != nil {
		defaultZone = FallbackZone
	}
	return &Resolver{store: store, def: defaultZone}
}

// Default returns the configured default zone.
func (r *Resolver) Default() string { return r.def }

// Resolve returns the zone for userID: stored preference (revalidated
// against the zone database), then the locale table, then the default.
// A stored zone that no longer loads falls back to the default, not to
// the locale guess.
func (r *Resolver) Resolve(ctx context.Context, userID, localeHint string) string {
	if z, ok := r.store.Timezone(ctx, userID); ok {
		if _, err := time.LoadLocation(z); err == nil {
			return z
		}
		return r.def
	}
	if localeHint != "" {
		key := strings.ToLower(strings.ReplaceAll(localeHint, "_", "-"))
		if z, ok := localeZones[key]; ok {
			return z
		}
		if i := strings.IndexByte(key, '-'); i > 0 {
			if z, ok := localeZones[key[:i]]; ok {
				return z
			}
		}
	}
	return r.def
}

// Set validates zone twice — against the zone database, then by
// constructing a live instant in it and checking it reports a zone —
// and commits it only if both pass. Returns false on any failure,
// leaving the prior preference untouched.
func (r *Resolver) Set(ctx context.Context, userID, zone string) bool {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return false
	}
	if name, _ := time.Now().In(loc).Zone(); name == "" {
		return false
	}
	return r.store.SetTimezone(ctx, userID, zone) == nil
}
