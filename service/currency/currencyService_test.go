package currency_test

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	kvrepo "bookjam/repository/kv"
	"bookjam/service/currency"
	"bookjam/service/persist"

	"github.com/stretchr/testify/require"
)

func newStore(kv kvrepo.Repo) *currency.Store {
	return currency.New(context.Background(), currency.DefaultTables(), persist.New(kv, persist.CurrencyKey, nil))
}

func TestDefaultsToBase(t *testing.T) {
	s := newStore(nil)
	require.Equal(t, "INR", s.Currency().Code)
	require.Equal(t, "India", s.RegionVariant().Region)
	require.InDelta(t, 499, s.FreeShippingThresholdInBase(), 1e-9)
}

func TestSetCurrency_SwapsVariant(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)

	sel := s.SetCurrency(ctx, "GBP")
	require.Equal(t, "GBP", sel.Currency.Code)
	require.Equal(t, "Europe", sel.Variant.Region)

	s.SetCurrency(ctx, "AUD")
	require.Equal(t, "International", s.RegionVariant().Region)
}

func TestSetCurrency_UnknownFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)
	s.SetCurrency(ctx, "USD")

	sel := s.SetCurrency(ctx, "XYZ")
	require.Equal(t, currency.Select(currency.DefaultTables(), "INR"), sel)
	require.Equal(t, "INR", s.Currency().Code)
	require.Equal(t, "India", s.RegionVariant().Region)
}

func TestThresholdInBase_DividesByRate(t *testing.T) {
	s := newStore(nil)
	s.SetCurrency(context.Background(), "USD")

	require.InDelta(t, 4166.67, s.FreeShippingThresholdInBase(), 0.01)
	require.NotEqual(t, 0.6, s.FreeShippingThresholdInBase())
}

func TestConvertPrice(t *testing.T) {
	s := newStore(nil)
	require.Equal(t, 424.0, s.ConvertPrice(424))

	s.SetCurrency(context.Background(), "USD")
	require.Equal(t, 5.09, s.ConvertPrice(424))
	require.Equal(t, 0.0, s.ConvertPrice(0))
}

func TestConvert_NonFiniteAmounts(t *testing.T) {
	usd := currency.DefaultTables().Currency("USD")
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.Equal(t, 0.0, currency.Convert(usd, f))
		require.Equal(t, 0.0, currency.ToBase(usd, f))
	}

	broken := usd
	broken.ExchangeRate = math.NaN()
	require.Equal(t, 0.0, currency.Convert(broken, 10))
	require.Equal(t, 10.0, currency.ToBase(broken, 10))

	s := newStore(nil)
	s.SetCurrency(context.Background(), "USD")
	require.NotPanics(t, func() { s.FormatPrice(math.NaN()) })
	require.Equal(t, "$0.00", s.FormatPrice(math.Inf(1)))
}

func TestSetCurrency_ConcurrentKeepsStoredCodeInSync(t *testing.T) {
	ctx := context.Background()
	kv := kvrepo.NewMemory()
	s := newStore(kv)

	codes := []string{"USD", "EUR", "GBP", "SGD"}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			s.SetCurrency(ctx, code)
		}(codes[i%len(codes)])
	}
	wg.Wait()

	raw, err := kv.Get(ctx, persist.CurrencyKey)
	require.NoError(t, err)
	var stored struct{ Code string }
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Equal(t, s.Currency().Code, stored.Code)
}

func TestFormatPrice(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)
	require.Equal(t, "₹424", s.FormatPrice(424))

	s.SetCurrency(ctx, "USD")
	require.Equal(t, "$5.09", s.FormatPrice(424))
	require.Equal(t, "$1,234.50", currency.Format(s.Currency(), 1234.5))

	s.SetCurrency(ctx, "EUR")
	require.Equal(t, "4,66\u00a0€", s.FormatPrice(424))
}

func TestFormat_Negative(t *testing.T) {
	usd := currency.DefaultTables().Currency("USD")
	require.Equal(t, "-$2.50", currency.Format(usd, -2.5))
}

func TestPersistence_OnlyCodeIsStored(t *testing.T) {
	ctx := context.Background()
	kv := kvrepo.NewMemory()
	newStore(kv).SetCurrency(ctx, "SGD")

	raw, err := kv.Get(ctx, persist.CurrencyKey)
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"SGD"}`, raw)

	again := newStore(kv)
	require.Equal(t, "SGD", again.Currency().Code)
	require.Equal(t, "International", again.RegionVariant().Region)
}

func TestPersistence_StaleCodeFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := kvrepo.NewMemory()
	require.NoError(t, kv.Set(ctx, persist.CurrencyKey, `{"code":"JPY"}`))
	require.Equal(t, "INR", newStore(kv).Currency().Code)

	require.NoError(t, kv.Set(ctx, persist.CurrencyKey, `garbage`))
	require.Equal(t, "INR", newStore(kv).Currency().Code)
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "currencies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
currencies:
  - code: INR
    symbol: "₹"
    name: Indian Rupee
    exchange_rate: 1
    locale: en-IN
    region: India
  - code: JPY
    symbol: "¥"
    name: Japanese Yen
    exchange_rate: 1.8
    locale: ja-JP
    region: Japan
region_variants:
  - region: India
    currencies: [INR]
    banner_text: Welcome
    free_shipping_threshold: 499
  - region: Japan
    currencies: [JPY]
    banner_text: Konnichiwa
    free_shipping_threshold: 5000
`), 0o600))

	tables, err := currency.LoadTables(path)
	require.NoError(t, err)
	require.Len(t, tables.Currencies, 2)
	require.True(t, tables.Known("JPY"))
	require.Equal(t, "Japan", tables.Variant("JPY").Region)
	require.Equal(t, 1.8, tables.Currency("JPY").ExchangeRate)
}

func TestLoadTables_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad iso":       "currencies: [{code: ZZZ1, exchange_rate: 1, locale: en}]\nregion_variants: [{region: X}]\n",
		"zero rate":     "currencies: [{code: USD, exchange_rate: 0, locale: en-US}]\nregion_variants: [{region: X}]\n",
		"duplicate":     "currencies: [{code: USD, exchange_rate: 1, locale: en-US}, {code: USD, exchange_rate: 1, locale: en-US}]\nregion_variants: [{region: X}]\n",
		"no variants":   "currencies: [{code: USD, exchange_rate: 1, locale: en-US}]\n",
		"not yaml":      "currencies: [",
		"no currencies": "region_variants: [{region: X}]\n",
		"nan rate":      "currencies: [{code: USD, exchange_rate: .nan, locale: en-US}]\nregion_variants: [{region: X}]\n",
		"nan threshold": "currencies: [{code: USD, exchange_rate: 1, locale: en-US}]\nregion_variants: [{region: X, free_shipping_threshold: .nan}]\n",
		"neg threshold": "currencies: [{code: USD, exchange_rate: 1, locale: en-US}]\nregion_variants: [{region: X, free_shipping_threshold: -5}]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := currency.LoadTables(path)
			require.Error(t, err)
		})
	}

	_, err := currency.LoadTables(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultTablesAreValid(t *testing.T) {
	require.NoError(t, currency.DefaultTables().Validate())
}
