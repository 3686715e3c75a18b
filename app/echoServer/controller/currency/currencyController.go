package currency

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"bookjam/app/echoServer/jwtx"
	currencysvc "bookjam/service/currency"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Tables currencysvc.Tables
	Log    *slog.Logger
}

// GET /v1/currencies
func (h *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Tables.Currencies})
}

// GET /v1/currency
func (h *Controller) Get(c echo.Context) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("currency without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": s.Currency.Selection()})
}

// PUT /v1/currency
// @Summary Switch the display currency
// @Description Unknown codes fall back to INR; the region variant follows the currency.
// @Tags    currency
// @Param   payload body SetCurrencyReq true "ISO 4217 code"
// @Success 200 {object} map[string]any
// @Failure 400
// @Router  /v1/currency [put]
func (h *Controller) Set(c echo.Context) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("currency without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	var req SetCurrencyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"code": "3-letter currency code"}})
	}
	code := strings.ToUpper(req.Code)
	if !h.Tables.Known(code) {
		h.Log.Info("unsupported currency requested, using default", "code", code)
	}
	sel := s.Currency.SetCurrency(c.Request().Context(), code)
	return c.JSON(http.StatusOK, echo.Map{"data": sel})
}

// GET /v1/region
func (h *Controller) Region(c echo.Context) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("region without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{
		"region_variant":                  s.Currency.RegionVariant(),
		"free_shipping_threshold_in_base": s.Currency.FreeShippingThresholdInBase(),
		"free_shipping_threshold_display": currencysvc.Format(s.Currency.Currency(), s.Currency.RegionVariant().FreeShippingThreshold),
	}})
}

// GET /v1/price?amount=424
func (h *Controller) Price(c echo.Context) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("price without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid amount"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{
		"amount_in_base": amount,
		"converted":      s.Currency.ConvertPrice(amount),
		"display":        s.Currency.FormatPrice(amount),
		"currency":       s.Currency.Currency().Code,
	}})
}
