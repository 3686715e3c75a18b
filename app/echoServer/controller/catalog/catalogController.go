package catalog

import (
	"log/slog"
	"net/http"

	"bookjam/app/echoServer/jwtx"
	"bookjam/model"
	catalogsvc "bookjam/service/catalog"
	currencysvc "bookjam/service/currency"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

type bookView struct {
	model.Book
	DisplayPrice         string `json:"display_price"`
	DisplayOriginalPrice string `json:"display_original_price,omitempty"`
}

func views(books []model.Book, prices *currencysvc.Store) []bookView {
	out := make([]bookView, 0, len(books))
	for _, b := range books {
		out = append(out, viewOf(b, prices))
	}
	return out
}

func viewOf(b model.Book, prices *currencysvc.Store) bookView {
	v := bookView{Book: b}
	if prices == nil {
		return v
	}
	v.DisplayPrice = prices.FormatPrice(b.Price)
	if b.OriginalPrice != nil {
		v.DisplayOriginalPrice = prices.FormatPrice(*b.OriginalPrice)
	}
	return v
}

// prices is nil when the request somehow has no session; views then skip formatting.
func prices(c echo.Context) *currencysvc.Store {
	s, err := jwtx.SessionFromContext(c)
	if err != nil {
		return nil
	}
	return s.Currency
}

// GET /v1/books?filter=bestseller|new|featured|kids&category=<slug>
// @Summary List books
// @Tags    catalog
// @Param   filter   query string false "bestseller, new, featured or kids"
// @Param   category query string false "category slug"
// @Success 200 {object} map[string]any
// @Failure 400
// @Router  /v1/books [get]
func (h *Controller) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		books []model.Book
		err   error
	)
	switch f := c.QueryParam("filter"); {
	case c.QueryParam("category") != "":
		books, err = h.Svc.BooksByCategory(ctx, c.QueryParam("category"))
	case f == "":
		books, err = h.Svc.Books(ctx)
	case f == "bestseller":
		books, err = h.Svc.Bestsellers(ctx)
	case f == "new":
		books, err = h.Svc.NewArrivals(ctx)
	case f == "featured":
		books, err = h.Svc.Featured(ctx)
	case f == "kids":
		books, err = h.Svc.KidsBooks(ctx)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown filter"})
	}
	if err != nil {
		h.Log.Error("list books", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": views(books, prices(c))})
}

// GET /v1/books/:slug
func (h *Controller) Detail(c echo.Context) error {
	b, err := h.Svc.BookBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book detail", "slug", c.Param("slug"), "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": viewOf(*b, prices(c))})
}

// GET /v1/search?q=
func (h *Controller) Search(c echo.Context) error {
	books, err := h.Svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		h.Log.Error("search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": views(books, prices(c)), "query": c.QueryParam("q")})
}

// GET /v1/categories
func (h *Controller) Categories(c echo.Context) error {
	cats, err := h.Svc.Categories(c.Request().Context())
	if err != nil {
		h.Log.Error("categories", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cats})
}

// GET /v1/categories/:slug
func (h *Controller) Category(c echo.Context) error {
	cat, err := h.Svc.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "category not found"})
		}
		h.Log.Error("category", "slug", c.Param("slug"), "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cat})
}

// GET /v1/banners
func (h *Controller) Banners(c echo.Context) error {
	banners, err := h.Svc.Banners(c.Request().Context())
	if err != nil {
		h.Log.Error("banners", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": banners})
}

// GET /v1/authors
func (h *Controller) Authors(c echo.Context) error {
	authors, err := h.Svc.Authors(c.Request().Context())
	if err != nil {
		h.Log.Error("authors", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": authors})
}
