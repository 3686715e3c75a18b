package jwtx

import (
	"errors"

	"bookjam/service/session"

	"github.com/labstack/echo/v4"
)

const sessionKey = "session"

func SetSession(c echo.Context, s *session.Session) { c.Set(sessionKey, s) }

func SessionFromContext(c echo.Context) (*session.Session, error) {
	s, ok := c.Get(sessionKey).(*session.Session)
	if !ok || s == nil {
		return nil, errors.New("no session in context")
	}
	return s, nil
}
