package checkoutsvc_test

import (
	"context"
	"testing"
	"time"

	"bookjam/model"
	"bookjam/service/cart"
	checkoutsvc "bookjam/service/checkout"
	"bookjam/service/currency"

	"github.com/stretchr/testify/require"
)

func book(uid string, price float64) *model.Book {
	return &model.Book{Entry: model.Entry{UID: uid}, Title: uid, Price: price}
}

func fixtures(t *testing.T) (*cart.Store, *currency.Store) {
	t.Helper()
	ctx := context.Background()
	return cart.New(ctx, nil), currency.New(ctx, currency.DefaultTables(), nil)
}

func validReq() model.CheckoutReq {
	return model.CheckoutReq{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		Pincode:       "560001",
		PaymentMethod: model.PayUPI,
	}
}

func TestQuote_BelowThreshold(t *testing.T) {
	c, p := fixtures(t)
	c.AddItem(context.Background(), book("a", 424))

	q := checkoutsvc.New(49, 0, nil, nil).Quote(c, p)
	require.Equal(t, 424.0, q.Subtotal)
	require.Equal(t, 49.0, q.ShippingFee)
	require.Equal(t, 473.0, q.Total)
	require.False(t, q.FreeShipping)
	require.Equal(t, 75.0, q.RemainingForFreeShipping)
	require.Equal(t, "₹49", q.ShippingDisplay)
	require.Equal(t, "₹473", q.TotalDisplay)
}

func TestQuote_FreeShipping(t *testing.T) {
	c, p := fixtures(t)
	ctx := context.Background()
	c.AddItem(ctx, book("a", 424))
	c.AddItem(ctx, book("a", 424))

	q := checkoutsvc.New(49, 0, nil, nil).Quote(c, p)
	require.True(t, q.FreeShipping)
	require.Zero(t, q.ShippingFee)
	require.Equal(t, 848.0, q.Total)
	require.Equal(t, "FREE", q.ShippingDisplay)
	require.Empty(t, q.RemainingDisplay)
}

func TestQuote_ThresholdFollowsCurrency(t *testing.T) {
	c, p := fixtures(t)
	ctx := context.Background()
	c.AddItem(ctx, book("a", 424))
	c.AddItem(ctx, book("a", 424))
	p.SetCurrency(ctx, "USD")

	q := checkoutsvc.New(49, 0, nil, nil).Quote(c, p)
	require.False(t, q.FreeShipping, "848 INR is under $50")
	require.Equal(t, 4166.67, q.ThresholdInBase)
	require.Equal(t, 3318.67, q.RemainingForFreeShipping)
	require.Equal(t, "USD", q.Currency)
	require.Equal(t, "$10.18", q.SubtotalDisplay)
}

func TestQuote_EmptyCart(t *testing.T) {
	c, p := fixtures(t)
	q := checkoutsvc.New(49, 0, nil, nil).Quote(c, p)
	require.Zero(t, q.Subtotal)
	require.Zero(t, q.ShippingFee)
	require.Zero(t, q.Total)
}

func TestPlaceOrder_Success(t *testing.T) {
	c, p := fixtures(t)
	ctx := context.Background()
	c.AddItem(ctx, book("a", 199))
	c.AddItem(ctx, book("b", 150))

	o, err := checkoutsvc.New(49, time.Millisecond, nil, nil).PlaceOrder(ctx, c, p, validReq())
	require.NoError(t, err)
	require.NotEmpty(t, o.ID)
	require.Equal(t, 2, o.Items)
	require.Equal(t, 398.0, o.Quote.Total)
	require.Equal(t, model.PayUPI, o.PaymentMethod)
	require.Empty(t, c.Items(), "cart is emptied after a successful order")
}

func TestPlaceOrder_InvalidDetails(t *testing.T) {
	c, p := fixtures(t)
	ctx := context.Background()
	c.AddItem(ctx, book("a", 199))

	req := validReq()
	req.Email = "not-an-email"
	req.PaymentMethod = "cash"

	_, err := checkoutsvc.New(49, 0, nil, nil).PlaceOrder(ctx, c, p, req)
	require.Error(t, err)
	require.Equal(t, checkoutsvc.ErrInvalidDetails, checkoutsvc.Code(err))
	require.Len(t, c.Items(), 1)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	c, p := fixtures(t)
	_, err := checkoutsvc.New(49, 0, nil, nil).PlaceOrder(context.Background(), c, p, validReq())
	require.Equal(t, checkoutsvc.ErrEmptyCart, checkoutsvc.Code(err))
}

func TestPlaceOrder_Cancelled(t *testing.T) {
	c, p := fixtures(t)
	c.AddItem(context.Background(), book("a", 199))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := checkoutsvc.New(49, time.Hour, nil, nil).PlaceOrder(ctx, c, p, validReq())
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, c.Items(), 1, "a cancelled payment keeps the cart")
}
