package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"city-weather/internal/display"
	"city-weather/internal/types"
	"city-weather/internal/weather"
)

type notFoundService struct{}

func (notFoundService) Lookup(context.Context, types.Query) (*weather.Report, error) {
	return nil, weather.ErrCityNotFound
}

func newTestStore(ttl time.Duration) (*Store, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(notFoundService{}, ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_Get_ReusesSession(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	id, c := s.Get("")
	if id == "" {
		t.Fatal("Get() returned empty id")
	}
	c.Search(context.Background(), "Atlantis")

	sameID, same := s.Get(id)
	if sameID != id {
		t.Errorf("Get(%q) id = %q, want same id", id, sameID)
	}
	if same != c {
		t.Error("Get() returned a different controller for a known id")
	}
	if same.State().Message != display.MessageCityNotFound {
		t.Errorf("state not kept across Get(): %+v", same.State())
	}
}

func TestStore_Get_UnknownOrMalformedID(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	for _, id := range []string{"not-a-uuid", "6f1c1d3e-0b8a-4c61-9d0a-1f1f4f0b9d11"} {
		newID, c := s.Get(id)
		if newID == id {
			t.Errorf("Get(%q) reused an id the store never issued", id)
		}
		if c.State().Phase != display.PhaseIdle {
			t.Errorf("new controller phase = %v, want idle", c.State().Phase)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStore_Get_EvictsIdleSessions(t *testing.T) {
	s, now := newTestStore(time.Minute)

	oldID, _ := s.Get("")
	*now = now.Add(2 * time.Minute)

	newID, c := s.Get(oldID)
	if newID == oldID {
		t.Error("expired session was reused")
	}
	if c.State().Phase != display.PhaseIdle {
		t.Errorf("phase = %v, want idle", c.State().Phase)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
