// Package session wires one cart, wishlist and currency store per browsing
// session. Stores are built on first use and rehydrated from the key-value medium.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	kvrepo "bookjam/repository/kv"
	"bookjam/service/cart"
	"bookjam/service/currency"
	"bookjam/service/persist"
	"bookjam/service/wishlist"
)

type Session struct {
	ID       string
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Currency *currency.Store
}

type entry struct {
	s        *Session
	lastSeen time.Time
}

type Registry struct {
	kv     kvrepo.Repo
	tables currency.Tables
	log    *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRegistry(kv kvrepo.Repo, tables currency.Tables, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		kv:       kv,
		tables:   tables,
		log:      log,
		now:      time.Now,
		sessions: map[string]*entry{},
	}
}

// Get returns the live session for id, building and rehydrating it if needed.
func (r *Registry) Get(ctx context.Context, id string) *Session {
	r.mu.Lock()
	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.s
	}
	r.mu.Unlock()

	built := r.build(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		// another request won the race
		e.lastSeen = r.now()
		return e.s
	}
	r.sessions[id] = &entry{s: built, lastSeen: r.now()}
	return built
}

func (r *Registry) build(ctx context.Context, id string) *Session {
	log := r.log.With("session", id)
	return &Session{
		ID:       id,
		Cart:     cart.New(ctx, persist.New(r.kv, persist.Key(persist.CartKey, id), log)),
		Wishlist: wishlist.New(ctx, persist.New(r.kv, persist.Key(persist.WishlistKey, id), log)),
		Currency: currency.New(ctx, r.tables, persist.New(r.kv, persist.Key(persist.CurrencyKey, id), log)),
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// evictIdle drops sessions unseen since before cutoff. Their state stays in the
// medium and comes back on the next Get.
func (r *Registry) evictIdle(cutoff time.Time) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
