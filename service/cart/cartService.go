package cart

import (
	"context"
	"sync"

	"bookjam/model"
	"bookjam/service/persist"

	"github.com/shopspring/decimal"
)

type Store struct {
	mu    sync.Mutex
	state State
	p     *persist.Persister
}

// New builds a cart and rehydrates its items from p. A nil p keeps the cart in memory only.
func New(ctx context.Context, p *persist.Persister) *Store {
	s := &Store{p: p}
	var saved State
	if p.Load(ctx, &saved) {
		s.state.Items = normalize(saved.Items)
	}
	return s
}

// Dispatch applies a and persists the items when they may have changed.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	if a.touchesItems() {
		s.p.Save(ctx, s.state)
	}
	return s.snapshot()
}

func (s *Store) AddItem(ctx context.Context, b *model.Book) { s.Dispatch(ctx, Add(b)) }
func (s *Store) RemoveItem(ctx context.Context, uid string) { s.Dispatch(ctx, Remove(uid)) }
func (s *Store) UpdateQuantity(ctx context.Context, uid string, q int) {
	s.Dispatch(ctx, SetQuantity(uid, q))
}
func (s *Store) Clear(ctx context.Context) { s.Dispatch(ctx, Clear()) }

func (s *Store) Open()   { s.Dispatch(context.Background(), Action{Kind: ActOpen}) }
func (s *Store) Close()  { s.Dispatch(context.Background(), Action{Kind: ActClose}) }
func (s *Store) Toggle() { s.Dispatch(context.Background(), Action{Kind: ActToggle}) }

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() State {
	return State{Items: cloneLines(s.state.Items), Open: s.state.Open}
}

func (s *Store) Items() []model.CartLine { return s.Snapshot().Items }
func (s *Store) IsOpen() bool            { return s.Snapshot().Open }

func (s *Store) TotalItems() int {
	return TotalItems(s.Snapshot())
}

func (s *Store) TotalPrice() float64 {
	return TotalPrice(s.Snapshot())
}

func TotalItems(st State) int {
	n := 0
	for _, l := range st.Items {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price x quantity in base currency. Discount fields are
// informational; Price already reflects them.
func TotalPrice(st State) float64 {
	sum := decimal.Zero
	for _, l := range st.Items {
		sum = sum.Add(decimal.NewFromFloat(l.Book.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.InexactFloat64()
}
