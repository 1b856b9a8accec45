package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jma-forecast/internal/application/middleware"
)

// PageController serves the region dropdown page of the caller's session
type PageController struct {
	api     *echo.Group
	session echo.MiddlewareFunc
}

func NewPageController(api *echo.Group, session echo.MiddlewareFunc) *PageController {
	return &PageController{api: api, session: session}
}

// InitPageRoutes initializes the page routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("", controller.Index, controller.session)
	controller.api.GET("/", controller.Index, controller.session)
	controller.api.POST("/select", controller.Select, controller.session)
}

// Index renders the page; a region query parameter selects that region first
func (controller *PageController) Index(c echo.Context) error {
	return controller.render(c, c.QueryParam("region"))
}

// Select applies the region form field and renders the page
func (controller *PageController) Select(c echo.Context) error {
	return controller.render(c, c.FormValue("region"))
}

func (controller *PageController) render(c echo.Context, regionCode string) error {
	pageController, ok := middleware.PageController(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "session not initialized")
	}

	view := pageController.Select(c.Request().Context(), regionCode)
	return c.Render(http.StatusOK, "index.html", view)
}
