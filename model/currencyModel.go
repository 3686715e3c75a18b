// model/currency.go
package model

const BaseCurrency = "INR"

type Currency struct {
	Code         string  `json:"code" yaml:"code"`
	Symbol       string  `json:"symbol" yaml:"symbol"`
	Name         string  `json:"name" yaml:"name"`
	ExchangeRate float64 `json:"exchange_rate" yaml:"exchange_rate"` // multiplier from INR
	Locale       string  `json:"locale" yaml:"locale"`
	Region       string  `json:"region" yaml:"region"`
}

// RegionVariant bundles region-specific promo and shipping parameters.
// FreeShippingThreshold is in the variant's own currency, not INR.
type RegionVariant struct {
	Region                string   `json:"region" yaml:"region"`
	Currencies            []string `json:"currencies" yaml:"currencies"`
	BannerText            string   `json:"banner_text" yaml:"banner_text"`
	BannerSubtext         string   `json:"banner_subtext" yaml:"banner_subtext"`
	PromoCode             string   `json:"promo_code,omitempty" yaml:"promo_code,omitempty"`
	FreeShippingThreshold float64  `json:"free_shipping_threshold" yaml:"free_shipping_threshold"`
	FeaturedGenres        []string `json:"featured_genres" yaml:"featured_genres"`
	ShippingInfo          string   `json:"shipping_info" yaml:"shipping_info"`
}

func (v RegionVariant) Accepts(code string) bool {
	for _, c := range v.Currencies {
		if c == code {
			return true
		}
	}
	return false
}
