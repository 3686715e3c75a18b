package wishlist

import (
	"context"
	"sync"
	"time"

	"bookjam/model"
	"bookjam/service/persist"
)

type Store struct {
	mu    sync.Mutex
	state State
	p     *persist.Persister
	now   func() time.Time
}

type Option func(*Store)

// WithClock overrides the source of addedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(ctx context.Context, p *persist.Persister, opts ...Option) *Store {
	s := &Store{p: p, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	var saved State
	if p.Load(ctx, &saved) {
		s.state.Items = dedupe(saved.Items)
	}
	return s
}

func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.At == "" {
		a.At = s.now().UTC().Format(time.RFC3339Nano)
	}
	s.state = Reduce(s.state, a)
	s.p.Save(ctx, s.state)
	return State{Items: clone(s.state.Items)}
}

func (s *Store) AddItem(ctx context.Context, b *model.Book) {
	s.Dispatch(ctx, Action{Kind: ActAdd, Book: b})
}

func (s *Store) RemoveItem(ctx context.Context, uid string) {
	s.Dispatch(ctx, Action{Kind: ActRemove, UID: uid})
}

// ToggleItem adds b when absent and removes it when present, under one lock.
// It reports whether b is saved afterwards.
func (s *Store) ToggleItem(ctx context.Context, b *model.Book) bool {
	st := s.Dispatch(ctx, Action{Kind: ActToggle, Book: b})
	return b != nil && contains(st.Items, b.UID)
}

func (s *Store) Clear(ctx context.Context) {
	s.Dispatch(ctx, Action{Kind: ActClear})
}

func (s *Store) IsInWishlist(uid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.state.Items, uid)
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Items)
}

func (s *Store) Items() []model.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Items)
}

// Entry returns the saved snapshot for uid.
func (s *Store) Entry(uid string) (model.WishlistEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.state.Items {
		if e.UID == uid {
			return e, true
		}
	}
	return model.WishlistEntry{}, false
}
