package cart

import (
	"log/slog"
	"net/http"

	"bookjam/app/echoServer/jwtx"
	"bookjam/model"
	cartsvc "bookjam/service/cart"
	catalogsvc "bookjam/service/catalog"
	"bookjam/service/session"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Catalog catalogsvc.Service
	V       *validator.Validate
	Log     *slog.Logger
}

type lineView struct {
	model.CartLine
	LineTotal   float64 `json:"line_total"`
	LineDisplay string  `json:"line_display"`
}

func view(s *session.Session) echo.Map {
	st := s.Cart.Snapshot()
	lines := make([]lineView, 0, len(st.Items))
	for _, l := range st.Items {
		total := l.Book.Price * float64(l.Quantity)
		lines = append(lines, lineView{CartLine: l, LineTotal: total, LineDisplay: s.Currency.FormatPrice(total)})
	}
	price := cartsvc.TotalPrice(st)
	return echo.Map{
		"items":         lines,
		"is_open":       st.Open,
		"total_items":   cartsvc.TotalItems(st),
		"total_price":   price,
		"total_display": s.Currency.FormatPrice(price),
		"currency":      s.Currency.Currency().Code,
	}
}

func (h *Controller) session(c echo.Context) (*session.Session, error) {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("cart without session", "err", err)
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return s, nil
}

// GET /v1/cart
func (h *Controller) Get(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
}

// POST /v1/cart/items
// @Summary Add one copy of a book to the cart
// @Tags    cart
// @Param   payload body AddItemReq true "Book to add"
// @Success 200 {object} map[string]any
// @Failure 400,404
// @Router  /v1/cart/items [post]
func (h *Controller) AddItem(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	var req AddItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"book_uid": "required"},
		})
	}
	book, err := h.Catalog.BookByUID(c.Request().Context(), req.BookUID)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("cart add lookup", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	s.Cart.AddItem(c.Request().Context(), book)
	return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
}

// PATCH /v1/cart/items/:uid
func (h *Controller) UpdateQuantity(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	var req UpdateQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"quantity": "required"}})
	}
	s.Cart.UpdateQuantity(c.Request().Context(), c.Param("uid"), *req.Quantity)
	return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
}

// DELETE /v1/cart/items/:uid
func (h *Controller) RemoveItem(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	s.Cart.RemoveItem(c.Request().Context(), c.Param("uid"))
	return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
}

// DELETE /v1/cart
func (h *Controller) Clear(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	s.Cart.Clear(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
}

// POST /v1/cart/open, /close, /toggle
func (h *Controller) Open(c echo.Context) error {
	return h.visibility(c, func(s *session.Session) { s.Cart.Open() })
}

func (h *Controller) Close(c echo.Context) error {
	return h.visibility(c, func(s *session.Session) { s.Cart.Close() })
}

func (h *Controller) Toggle(c echo.Context) error {
	return h.visibility(c, func(s *session.Session) { s.Cart.Toggle() })
}

func (h *Controller) visibility(c echo.Context, apply func(*session.Session)) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	apply(s)
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"is_open": s.Cart.IsOpen()}})
}
