package checkoutsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookjam/model"
	"bookjam/service/cart"
	"bookjam/service/currency"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmptyCart      ErrCode = "EMPTY_CART"
	ErrInvalidDetails ErrCode = "INVALID_DETAILS"
)

type codedError struct {
	code ErrCode
	err  error
}

func (e codedError) Error() string {
	if e.err != nil {
		return string(e.code) + ": " + e.err.Error()
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }
func (e codedError) Unwrap() error { return e.err }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Cart interface {
	Snapshot() cart.State
	Clear(ctx context.Context)
}

type Prices interface {
	Selection() currency.Selection
}

type Service interface {
	// Quote prices the cart in base currency, shipping included.
	Quote(c Cart, p Prices) model.Quote

	// PlaceOrder validates details, simulates payment and empties the cart.
	PlaceOrder(ctx context.Context, c Cart, p Prices, req model.CheckoutReq) (*model.Order, error)
}

type service struct {
	shippingFee float64 // base currency
	delay       time.Duration
	v           *validator.Validate
	log         *slog.Logger
}

func New(shippingFee float64, delay time.Duration, v *validator.Validate, log *slog.Logger) Service {
	if v == nil {
		v = validator.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &service{shippingFee: shippingFee, delay: delay, v: v, log: log}
}

func (s *service) Quote(c Cart, p Prices) model.Quote {
	return s.quote(c.Snapshot(), p.Selection())
}

func (s *service) quote(st cart.State, sel currency.Selection) model.Quote {
	subtotal := decimal.NewFromFloat(cart.TotalPrice(st))
	threshold := currency.ToBase(sel.Currency, sel.Variant.FreeShippingThreshold)

	q := model.Quote{
		Subtotal:        subtotal.InexactFloat64(),
		ThresholdInBase: decimal.NewFromFloat(threshold).Round(2).InexactFloat64(),
		Currency:        sel.Currency.Code,
	}

	fee := decimal.Zero
	if len(st.Items) > 0 {
		if subtotal.GreaterThanOrEqual(decimal.NewFromFloat(threshold)) {
			q.FreeShipping = true
		} else {
			fee = decimal.NewFromFloat(s.shippingFee)
			q.RemainingForFreeShipping = decimal.NewFromFloat(threshold).Sub(subtotal).Round(2).InexactFloat64()
		}
	}
	q.ShippingFee = fee.InexactFloat64()
	q.Total = subtotal.Add(fee).InexactFloat64()

	format := func(v float64) string { return currency.Format(sel.Currency, currency.Convert(sel.Currency, v)) }
	q.SubtotalDisplay = format(q.Subtotal)
	q.TotalDisplay = format(q.Total)
	if q.FreeShipping {
		q.ShippingDisplay = "FREE"
	} else {
		q.ShippingDisplay = format(q.ShippingFee)
	}
	if q.RemainingForFreeShipping > 0 {
		q.RemainingDisplay = format(q.RemainingForFreeShipping)
	}
	return q
}

func (s *service) PlaceOrder(ctx context.Context, c Cart, p Prices, req model.CheckoutReq) (*model.Order, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, codedError{code: ErrInvalidDetails, err: err}
	}
	st := c.Snapshot()
	if len(st.Items) == 0 {
		return nil, codedError{code: ErrEmptyCart}
	}
	q := s.quote(st, p.Selection())

	// no gateway: stand in for the payment round trip
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("place order: %w", ctx.Err())
		case <-t.C:
		}
	}

	c.Clear(ctx)
	o := &model.Order{
		ID:            uuid.NewString(),
		Email:         req.Email,
		PaymentMethod: req.PaymentMethod,
		Items:         cart.TotalItems(st),
		Quote:         q,
		PlacedAt:      time.Now().UTC(),
	}
	s.log.Info("order placed", "order_id", o.ID, "items", o.Items, "total", q.Total, "payment_method", o.PaymentMethod)
	return o, nil
}
