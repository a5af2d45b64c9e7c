package tz

import (
	"context"
	"testing"
)

func TestResolve_DefaultWhenNothingKnown(t *testing.T) {
	r := New(NewMemoryStore(), "America/Sao_Paulo")
	if got := r.Resolve(context.Background(), "u1", ""); got != "America/Sao_Paulo" {
		t.Fatalf("got %q", got)
	}
}

func TestResolve_LocaleLookup(t *testing.T) {
	r := New(NewMemoryStore(), "America/Sao_Paulo")
	ctx := context.Background()

	cases := []struct {
		locale string
		want   string
	}{
		{"pt", "America/Sao_Paulo"},
		{"pt-BR", "America/Sao_Paulo"},
		{"pt_BR", "America/Sao_Paulo"}, // underscore form normalizes
		{"pt-PT", "Europe/Lisbon"},
		{"en", "America/New_York"},
		{"en-AU", "America/New_York"}, // falls back to the language part
		{"fr", "America/Sao_Paulo"},   // unknown locale → default
	}
	for _, c := range cases {
		if got := r.Resolve(ctx, "u1", c.locale); got != c.want {
			t.Errorf("%q: got %q, want %q", c.locale, got, c.want)
		}
	}
}

func TestResolve_StoredPreferenceWins(t *testing.T) {
	r := New(NewMemoryStore(), "America/Sao_Paulo")
	ctx := context.Background()

	if !r.Set(ctx, "u1", "Europe/Lisbon") {
		t.Fatal("set failed")
	}
	if got := r.Resolve(ctx, "u1", "pt"); got != "Europe/Lisbon" {
		t.Fatalf("got %q, want stored preference", got)
	}
	// other users unaffected
	if got := r.Resolve(ctx, "u2", "pt"); got != "America/Sao_Paulo" {
		t.Fatalf("u2: got %q", got)
	}
}

func TestSet_InvalidZoneKeepsPrior(t *testing.T) {
	r := New(NewMemoryStore(), "America/Sao_Paulo")
	ctx := context.Background()

	if r.Set(ctx, "u1", "Not/AZone") {
		t.Fatal("invalid zone accepted")
	}
	if got := r.Resolve(ctx, "u1", ""); got != "America/Sao_Paulo" {
		t.Fatalf("got %q, want default untouched", got)
	}

	if !r.Set(ctx, "u1", "America/Bahia") {
		t.Fatal("valid zone rejected")
	}
	if r.Set(ctx, "u1", "Also/Invalid") {
		t.Fatal("invalid zone accepted")
	}
	if got := r.Resolve(ctx, "u1", ""); got != "America/Bahia" {
		t.Fatalf("got %q, want prior preference preserved", got)
	}
}

func TestResolve_CorruptStoredZoneFallsToDefault(t *testing.T) {
	store := NewMemoryStore()
	r := New(store, "America/Sao_Paulo")
	ctx := context.Background()

	// Write an unloadable zone straight into the store, as if the zone
	// database shrank under a previously valid preference.
	if err := store.SetTimezone(ctx, "u1", "America/Gone_City"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	// The locale would map to New York, but a corrupt stored zone must
	// fall back to the default instead of the locale guess.
	if got := r.Resolve(ctx, "u1", "en"); got != "America/Sao_Paulo" {
		t.Fatalf("got %q, want default", got)
	}
}

func TestNew_InvalidDefaultFallsBack(t *testing.T) {
	r := New(NewMemoryStore(), "Broken/Zone")
	if got := r.Default(); got != FallbackZone {
		t.Fatalf("got %q, want %q", got, FallbackZone)
	}
}
