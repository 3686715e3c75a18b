package wishlist

import (
	"log/slog"
	"net/http"

	"bookjam/app/echoServer/jwtx"
	"bookjam/model"
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

func view(s *session.Session) echo.Map {
	return echo.Map{
		"items":      s.Wishlist.Items(),
		"item_count": s.Wishlist.ItemCount(),
	}
}

func (h *Controller) withSession(c echo.Context, fn func(*session.Session) error) error {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		h.Log.Error("wishlist without session", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return fn(s)
}

func (h *Controller) lookup(c echo.Context, uid string) (*model.Book, error) {
	book, err := h.Catalog.BookByUID(c.Request().Context(), uid)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("wishlist lookup", "uid", uid, "err", err)
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return book, nil
}

// GET /v1/wishlist
func (h *Controller) List(c echo.Context) error {
	return h.withSession(c, func(s *session.Session) error {
		return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
	})
}

// GET /v1/wishlist/items/:uid
func (h *Controller) Contains(c echo.Context) error {
	return h.withSession(c, func(s *session.Session) error {
		uid := c.Param("uid")
		return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"uid": uid, "in_wishlist": s.Wishlist.IsInWishlist(uid)}})
	})
}

// POST /v1/wishlist/items
func (h *Controller) Add(c echo.Context) error {
	return h.withSession(c, func(s *session.Session) error {
		var req AddItemReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
		}
		if err := h.V.Struct(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"book_uid": "required"}})
		}
		book, err := h.lookup(c, req.BookUID)
		if book == nil {
			return err
		}
		s.Wishlist.AddItem(c.Request().Context(), book)
		return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
	})
}

// POST /v1/wishlist/items/:uid/toggle
// @Summary Save or unsave a book (heart icon)
// @Tags    wishlist
// @Success 200 {object} map[string]any
// @Failure 404
// @Router  /v1/wishlist/items/{uid}/toggle [post]
func (h *Controller) Toggle(c echo.Context) error {
	return h.withSession(c, func(s *session.Session) error {
		book, err := h.lookup(c, c.Param("uid"))
		if book == nil {
			return err
		}
		saved := s.Wishlist.ToggleItem(c.Request().Context(), book)
		return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"uid": book.UID, "in_wishlist": saved, "item_count": s.Wishlist.ItemCount()}})
	})
}

// DELETE /v1/wishlist/items/:uid
func (h *Controller) Remove(c echo.Context) error {
	return h.withSession(c, func(s *session.Session) error {
		s.Wishlist.RemoveItem(c.Request().Context(), c.Param("uid"))
		return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
	})
}

// DELETE /v1/wishlist
func (h *Controller) Clear(c echo.Context) error {
	return h.withSession(c, func(s *session.Session) error {
		s.Wishlist.Clear(c.Request().Context())
		return c.JSON(http.StatusOK, echo.Map{"data": view(s)})
	})
}
