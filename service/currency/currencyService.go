package currency

import (
	"context"
	"math"
	"sync"

	"bookjam/model"
	"bookjam/service/persist"

	"github.com/shopspring/decimal"
)

// Selection is the active currency and the region variant derived from it.
type Selection struct {
	Currency model.Currency      `json:"currency"`
	Variant  model.RegionVariant `json:"region_variant"`
}

// Select resolves code against t. Unknown codes resolve to the defaults.
func Select(t Tables, code string) Selection {
	c := t.Currency(code)
	return Selection{Currency: c, Variant: t.Variant(c.Code)}
}

// persisted form; the rest is derived from the tables on load
type saved struct {
	Code string `json:"code"`
}

type Store struct {
	mu     sync.RWMutex
	tables Tables
	sel    Selection
	p      *persist.Persister
}

func New(ctx context.Context, t Tables, p *persist.Persister) *Store {
	s := &Store{tables: t, sel: Select(t, t.Currencies[0].Code), p: p}
	var sv saved
	if p.Load(ctx, &sv) {
		s.sel = Select(t, sv.Code)
	}
	return s
}

// SetCurrency swaps currency and variant together. It never fails.
func (s *Store) SetCurrency(ctx context.Context, code string) Selection {
	next := Select(s.tables, code)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = next
	// the stored code always matches the last selection
	s.p.Save(ctx, saved{Code: next.Currency.Code})
	return next
}

func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel
}

func (s *Store) Currency() model.Currency           { return s.Selection().Currency }
func (s *Store) RegionVariant() model.RegionVariant { return s.Selection().Variant }
func (s *Store) Tables() Tables                     { return s.tables }

// ConvertPrice converts a base-currency amount to the active currency, rounded to 2 places.
func (s *Store) ConvertPrice(amountInBase float64) float64 {
	return Convert(s.Currency(), amountInBase)
}

// FormatPrice converts then formats a base-currency amount.
func (s *Store) FormatPrice(amountInBase float64) string {
	c := s.Currency()
	return Format(c, Convert(c, amountInBase))
}

// FreeShippingThresholdInBase converts the variant's threshold, which is held in
// the variant's own currency, back into base units.
func (s *Store) FreeShippingThresholdInBase() float64 {
	sel := s.Selection()
	return ToBase(sel.Currency, sel.Variant.FreeShippingThreshold)
}

// Convert returns 0 for NaN and infinite amounts.
func Convert(c model.Currency, amountInBase float64) float64 {
	if !finite(amountInBase) || !finite(c.ExchangeRate) {
		return 0
	}
	return decimal.NewFromFloat(amountInBase).
		Mul(decimal.NewFromFloat(c.ExchangeRate)).
		Round(2).
		InexactFloat64()
}

// ToBase divides by the exchange rate. It does not round. Non-finite amounts give 0.
func ToBase(c model.Currency, amount float64) float64 {
	if !finite(amount) {
		return 0
	}
	if c.ExchangeRate == 0 || !finite(c.ExchangeRate) {
		return amount
	}
	return amount / c.ExchangeRate
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
