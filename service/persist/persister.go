// Package persist serializes store state into the key-value medium after each
// transition and rehydrates it on construction. Failures never reach callers.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	kvrepo "bookjam/repository/kv"
)

// Namespaced keys, one per store.
const (
	CartKey     = "bookjam-cart"
	WishlistKey = "bookjam-wishlist"
	CurrencyKey = "bookjam-currency"
)

// Key scopes a store key to one session.
func Key(base, sessionID string) string {
	if sessionID == "" {
		return base
	}
	return base + ":" + sessionID
}

type Persister struct {
	kv  kvrepo.Repo
	key string
	log *slog.Logger
}

// New returns a persister for key. A nil kv makes every call a no-op.
func New(kv kvrepo.Repo, key string, log *slog.Logger) *Persister {
	if log == nil {
		log = slog.Default()
	}
	return &Persister{kv: kv, key: key, log: log}
}

func (p *Persister) Key() string {
	if p == nil {
		return ""
	}
	return p.key
}

// Load decodes the stored value into v. It reports false when nothing usable
// was stored; v must then be treated as untouched.
func (p *Persister) Load(ctx context.Context, v any) bool {
	if p == nil || p.kv == nil {
		return false
	}
	raw, err := p.kv.Get(ctx, p.key)
	if err != nil {
		if !errors.Is(err, kvrepo.ErrNotFound) {
			p.log.Warn("persist read failed", "key", p.key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		p.log.Warn("persisted state unreadable, using defaults", "key", p.key, "err", err)
		return false
	}
	return true
}

// Save writes v. Errors are logged and dropped.
func (p *Persister) Save(ctx context.Context, v any) {
	if p == nil || p.kv == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		p.log.Error("persist encode failed", "key", p.key, "err", err)
		return
	}
	if err := p.kv.Set(ctx, p.key, string(b)); err != nil {
		p.log.Error("persist write failed", "key", p.key, "err", err)
	}
}
