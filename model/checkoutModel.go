// model/checkout.go
package model

import "time"

type PaymentMethod string

const (
	PayCard       PaymentMethod = "card"
	PayUPI        PaymentMethod = "upi"
	PayNetbanking PaymentMethod = "netbanking"
	PayWallet     PaymentMethod = "wallet"
)

// CheckoutReq represents the shipping details step plus the chosen payment method
// swagger:model CheckoutReq
type CheckoutReq struct {
	FirstName     string        `json:"first_name" validate:"required"`
	LastName      string        `json:"last_name" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Phone         string        `json:"phone" validate:"required,min=7,max=20"`
	Address       string        `json:"address" validate:"required"`
	City          string        `json:"city" validate:"required"`
	State         string        `json:"state" validate:"required"`
	Pincode       string        `json:"pincode" validate:"required,alphanum,min=3,max=10"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=card upi netbanking wallet"`
}

type Quote struct {
	Subtotal                 float64 `json:"subtotal"`
	ShippingFee              float64 `json:"shipping_fee"`
	Total                    float64 `json:"total"`
	ThresholdInBase          float64 `json:"threshold_in_base"`
	FreeShipping             bool    `json:"free_shipping"`
	RemainingForFreeShipping float64 `json:"remaining_for_free_shipping"`

	Currency         string `json:"currency"`
	SubtotalDisplay  string `json:"subtotal_display"`
	ShippingDisplay  string `json:"shipping_display"`
	TotalDisplay     string `json:"total_display"`
	RemainingDisplay string `json:"remaining_display,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         int           `json:"items"`
	Quote         Quote         `json:"quote"`
	PlacedAt      time.Time     `json:"placed_at"`
}
