// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"bookjam/app/echoServer/jwtx"
	"bookjam/service/session"
	jwtutil "bookjam/util/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	HeaderSessionToken = "X-Session-Token"
	CookieSession      = "bookjam_session"
)

func RegisterMiddlewares(e *echo.Echo, log *slog.Logger, rps float64) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog(log))

	if rps > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(rps))))
	}
}

func Slog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the status before we log it
				c.Error(err)
			}
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return nil
		}
	}
}

// Session attaches the caller's session, issuing a fresh token when the request
// carries none or an invalid one. It runs after the JWT middleware, which leaves
// a verified *jwt.Token under "user" when a good token was sent.
func Session(reg *session.Registry, secret string, ttlHours int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, _ := c.Get("user").(*jwt.Token)
			sid, err := jwtutil.SessionID(tok)
			if err != nil {
				sid = uuid.NewString()
				raw, err := jwtutil.Issue(secret, sid, ttlHours)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session error")
				}
				c.Response().Header().Set(HeaderSessionToken, raw)
				c.SetCookie(&http.Cookie{
					Name:     CookieSession,
					Value:    raw,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(time.Duration(ttlHours) * time.Hour),
				})
			}
			jwtx.SetSession(c, reg.Get(c.Request().Context(), sid))
			return next(c)
		}
	}
}
