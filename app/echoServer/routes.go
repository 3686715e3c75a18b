package echoServer

import (
	"bookjam/app/echoServer/controller/cart"
	"bookjam/app/echoServer/controller/catalog"
	"bookjam/app/echoServer/controller/checkout"
	"bookjam/app/echoServer/controller/currency"
	"bookjam/app/echoServer/controller/wishlist"
	"bookjam/service/session"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Catalog  *catalog.Controller
	Cart     *cart.Controller
	Wishlist *wishlist.Controller
	Currency *currency.Controller
	Checkout *checkout.Controller

	Sessions        *session.Registry
	SessionSecret   string
	SessionTTLHours int
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// A missing or bad token is not an error here: Session issues a new one.
	v1.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.SessionSecret),
		NewClaimsFunc: func(echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:" + HeaderSessionToken + ",cookie:" + CookieSession,

		ContinueOnIgnoredError: true,
		ErrorHandler:           func(echo.Context, error) error { return nil },
	}))
	v1.Use(Session(c.Sessions, c.SessionSecret, c.SessionTTLHours))

	// Catalog
	v1.GET("/books", c.Catalog.List)
	v1.GET("/books/:slug", c.Catalog.Detail)
	v1.GET("/search", c.Catalog.Search)
	v1.GET("/categories", c.Catalog.Categories)
	v1.GET("/categories/:slug", c.Catalog.Category)
	v1.GET("/banners", c.Catalog.Banners)
	v1.GET("/authors", c.Catalog.Authors)

	// Cart
	v1.GET("/cart", c.Cart.Get)
	v1.POST("/cart/items", c.Cart.AddItem)
	v1.PATCH("/cart/items/:uid", c.Cart.UpdateQuantity)
	v1.DELETE("/cart/items/:uid", c.Cart.RemoveItem)
	v1.DELETE("/cart", c.Cart.Clear)
	v1.POST("/cart/open", c.Cart.Open)
	v1.POST("/cart/close", c.Cart.Close)
	v1.POST("/cart/toggle", c.Cart.Toggle)

	// Wishlist
	v1.GET("/wishlist", c.Wishlist.List)
	v1.POST("/wishlist/items", c.Wishlist.Add)
	v1.GET("/wishlist/items/:uid", c.Wishlist.Contains)
	v1.POST("/wishlist/items/:uid/toggle", c.Wishlist.Toggle)
	v1.DELETE("/wishlist/items/:uid", c.Wishlist.Remove)
	v1.DELETE("/wishlist", c.Wishlist.Clear)

	// Currency / region
	v1.GET("/currencies", c.Currency.List)
	v1.GET("/currency", c.Currency.Get)
	v1.PUT("/currency", c.Currency.Set)
	v1.GET("/region", c.Currency.Region)
	v1.GET("/price", c.Currency.Price)

	// Checkout
	v1.GET("/checkout/quote", c.Checkout.Quote)
	v1.POST("/checkout", c.Checkout.Place)
}
