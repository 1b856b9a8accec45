package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jma-forecast/internal/application/page"
	"jma-forecast/internal/application/session"
)

const pageControllerKey = "page.controller"

// Session binds the page controller of the caller's session to the echo context,
// opening a session when the cookie is missing or expired. Every request starts
// the controller, so a session whose catalog load failed retries it.
func Session(store *session.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cookieName); err == nil {
				if controller, ok := store.Get(cookie.Value); ok {
					controller.Start(c.Request().Context())
					c.Set(pageControllerKey, controller)
					return next(c)
				}
			}

			id, controller := store.Create()
			controller.Start(c.Request().Context())

			c.SetCookie(&http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(pageControllerKey, controller)
			return next(c)
		}
	}
}

// PageController returns the controller bound by Session
func PageController(c echo.Context) (*page.Controller, bool) {
	controller, ok := c.Get(pageControllerKey).(*page.Controller)
	return controller, ok
}
