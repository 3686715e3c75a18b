package currency

import (
	"errors"
	"fmt"
	"os"

	"bookjam/model"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Tables is the static reference data. The first entry of each list is the default.
type Tables struct {
	Currencies []model.Currency      `yaml:"currencies"`
	Variants   []model.RegionVariant `yaml:"region_variants"`
}

func DefaultTables() Tables {
	return Tables{
		Currencies: []model.Currency{
			{Code: "INR", Symbol: "₹", Name: "Indian Rupee", ExchangeRate: 1, Locale: "en-IN", Region: "India"},
			{Code: "USD", Symbol: "$", Name: "US Dollar", ExchangeRate: 0.012, Locale: "en-US", Region: "United States"},
			{Code: "EUR", Symbol: "€", Name: "Euro", ExchangeRate: 0.011, Locale: "de-DE", Region: "Europe"},
			{Code: "GBP", Symbol: "£", Name: "British Pound", ExchangeRate: 0.0095, Locale: "en-GB", Region: "United Kingdom"},
			{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", ExchangeRate: 0.044, Locale: "ar-AE", Region: "UAE"},
			{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", ExchangeRate: 0.016, Locale: "en-SG", Region: "Singapore"},
			{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", ExchangeRate: 0.018, Locale: "en-AU", Region: "Australia"},
		},
		Variants: []model.RegionVariant{
			{
				Region:                "India",
				Currencies:            []string{"INR"},
				BannerText:            "Welcome to BookJam India!",
				BannerSubtext:         "Free shipping on orders above ₹499",
				PromoCode:             "NAMASTE10",
				FreeShippingThreshold: 499,
				FeaturedGenres:        []string{"Indian Fiction", "Mythology", "Self-Help"},
				ShippingInfo:          "Delivery in 3-7 business days across India",
			},
			{
				Region:                "United States",
				Currencies:            []string{"USD"},
				BannerText:            "BookJam Ships to USA!",
				BannerSubtext:         "Free international shipping on orders over $50",
				PromoCode:             "USA15",
				FreeShippingThreshold: 50,
				FeaturedGenres:        []string{"Bestsellers", "Contemporary Fiction", "Business"},
				ShippingInfo:          "International delivery in 10-15 business days",
			},
			{
				Region:                "Europe",
				Currencies:            []string{"EUR", "GBP"},
				BannerText:            "BookJam Europe",
				BannerSubtext:         "Free shipping on orders over €45",
				PromoCode:             "EURO15",
				FreeShippingThreshold: 45,
				FeaturedGenres:        []string{"Literary Fiction", "Classics", "Philosophy"},
				ShippingInfo:          "EU delivery in 12-18 business days",
			},
			{
				Region:                "UAE",
				Currencies:            []string{"AED"},
				BannerText:            "مرحبا بكم في BookJam!",
				BannerSubtext:         "Free shipping on orders over AED 150",
				PromoCode:             "DUBAI20",
				FreeShippingThreshold: 150,
				FeaturedGenres:        []string{"Islamic Literature", "Arabic Fiction", "Business"},
				ShippingInfo:          "UAE delivery in 7-10 business days",
			},
			{
				Region:                "International",
				Currencies:            []string{"SGD", "AUD"},
				BannerText:            "BookJam Ships Worldwide!",
				BannerSubtext:         "Flat rate international shipping",
				FreeShippingThreshold: 75,
				FeaturedGenres:        []string{"Bestsellers", "Award Winners", "Non-Fiction"},
				ShippingInfo:          "International delivery in 15-21 business days",
			},
		},
	}
}

// LoadTables reads a YAML override of the reference tables.
func LoadTables(path string) (Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read currency tables: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Tables{}, fmt.Errorf("parse currency tables %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, fmt.Errorf("currency tables %s: %w", path, err)
	}
	return t, nil
}

func (t Tables) Validate() error {
	if len(t.Currencies) == 0 {
		return errors.New("no currencies")
	}
	if len(t.Variants) == 0 {
		return errors.New("no region variants")
	}
	seen := map[string]bool{}
	for _, c := range t.Currencies {
		if _, err := currency.ParseISO(c.Code); err != nil {
			return fmt.Errorf("currency %q: %w", c.Code, err)
		}
		if seen[c.Code] {
			return fmt.Errorf("currency %q listed twice", c.Code)
		}
		seen[c.Code] = true
		if c.ExchangeRate <= 0 || !finite(c.ExchangeRate) {
			return fmt.Errorf("currency %s: exchange_rate must be > 0", c.Code)
		}
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("currency %s: locale %q: %w", c.Code, c.Locale, err)
		}
	}
	for _, v := range t.Variants {
		th := v.FreeShippingThreshold
		if th < 0 || !finite(th) {
			return fmt.Errorf("region %q: free_shipping_threshold must be a finite amount >= 0", v.Region)
		}
	}
	return nil
}

// Currency returns the entry for code, or the default entry when code is unknown.
func (t Tables) Currency(code string) model.Currency {
	for _, c := range t.Currencies {
		if c.Code == code {
			return c
		}
	}
	return t.Currencies[0]
}

func (t Tables) Known(code string) bool {
	for _, c := range t.Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Variant returns the first variant listing code, or the default variant.
func (t Tables) Variant(code string) model.RegionVariant {
	for _, v := range t.Variants {
		if v.Accepts(code) {
			return v
		}
	}
	return t.Variants[0]
}
