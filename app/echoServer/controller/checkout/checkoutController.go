package checkout

import (
	"errors"
	"log/slog"
	"net/http"

	"bookjam/app/echoServer/jwtx"
	"bookjam/model"
	checkoutsvc "bookjam/service/checkout"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc checkoutsvc.Service
	Log *slog.Logger
}

// GET /v1/checkout/quote
func (h *Controller) Quote(c echo.Context) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("quote without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.Quote(s.Cart, s.Currency)})
}

// POST /v1/checkout
// @Summary Place an order for the current cart
// @Tags    checkout
// @Param   payload body model.CheckoutReq true "Shipping details and payment method"
// @Success 201 {object} model.Order
// @Failure 400,409
// @Router  /v1/checkout [post]
func (h *Controller) Place(c echo.Context) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("checkout without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	var req model.CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}

	order, err := h.Svc.PlaceOrder(c.Request().Context(), s.Cart, s.Currency, req)
	if err != nil {
		switch checkoutsvc.Code(err) {
		case checkoutsvc.ErrInvalidDetails:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": fieldErrors(err)})
		case checkoutsvc.ErrEmptyCart:
			return c.JSON(http.StatusConflict, echo.Map{"message": "cart is empty"})
		}
		h.Log.Error("place order", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": order})
}

func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
