package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/widget"
	"go-weather/pkg/msg"
)

type WidgetController struct {
	api          *echo.Group
	useCase      widget.UseCase
	assetBaseURL string
}

func NewWidgetController(api *echo.Group, useCase widget.UseCase, assetBaseURL string) *WidgetController {
	return &WidgetController{
		api:          api,
		useCase:      useCase,
		assetBaseURL: strings.TrimRight(assetBaseURL, "/"),
	}
}

// InitWidgetRoutes initializes widget routes
func (controller *WidgetController) InitWidgetRoutes() {
	controller.api.POST("/widgets", controller.Open)
	controller.api.GET("/widgets/:id", controller.State)
	controller.api.POST("/widgets/:id/search", controller.Search)
	controller.api.POST("/widgets/:id/suggestions", controller.Suggest)
	controller.api.POST("/widgets/:id/select", controller.Select)
	controller.api.POST("/widgets/:id/location", controller.Locate)
	controller.api.DELETE("/widgets/:id", controller.Close)
}

// Open godoc
// @Summary Mount a widget
// @Description Create a widget session. The body may carry the one-shot geolocation fix of the host.
// @Tags widgets
// @Accept json
// @Produce json
// @Param location body model.GeolocationDTO false "Geolocation fix"
// @Success 201 {object} model.WidgetResponse "Widget state, with an alert when the fix could not be resolved"
// @Failure 400 {object} map[string]string "Invalid request body or position"
// @Router /widgets [post]
func (controller *WidgetController) Open(c echo.Context) error {
	var dto model.GeolocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-body")})
	}

	var fix *widget.GeolocationFix
	if dto.Unavailable || dto.HasPosition() {
		resolved, err := controller.toFix(c, dto)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-position", err)})
		}
		fix = &resolved
	}

	state, err := controller.useCase.Open(c.Request().Context(), fix)
	if err != nil && widget.AlertFor(err) == nil {
		return controller.respond(c, http.StatusCreated, state, err)
	}
	// the session exists even when the fix could not be resolved
	return c.JSON(http.StatusCreated, controller.toResponse(state, widget.AlertFor(err)))
}

// State godoc
// @Summary Get widget state
// @Description Get the current weather and suggestion list of a widget
// @Tags widgets
// @Produce json
// @Param id path string true "Widget id"
// @Success 200 {object} model.WidgetResponse "Widget state"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /widgets/{id} [get]
func (controller *WidgetController) State(c echo.Context) error {
	state, err := controller.useCase.State(c.Request().Context(), c.Param("id"))
	return controller.respond(c, http.StatusOK, state, err)
}

// Search godoc
// @Summary Search a city
// @Description Fetch the current weather for a city name. A successful search clears the suggestion list.
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget id"
// @Param search body model.SearchDTO true "City name"
// @Success 200 {object} model.WidgetResponse "Widget state"
// @Failure 400 {object} model.WidgetResponse "Empty city name"
// @Failure 404 {object} model.WidgetResponse "City not found"
// @Failure 502 {object} model.WidgetResponse "Weather provider unavailable"
// @Router /widgets/{id}/search [post]
func (controller *WidgetController) Search(c echo.Context) error {
	var dto model.SearchDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-body")})
	}

	state, err := controller.useCase.Search(c.Request().Context(), c.Param("id"), dto.City)
	return controller.respond(c, http.StatusOK, state, err)
}

// Suggest godoc
// @Summary Suggest cities
// @Description Refresh the autocomplete list for the text typed so far. Fewer than 2 characters clear the list.
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget id"
// @Param suggest body model.SuggestDTO true "Partial input"
// @Success 200 {object} model.WidgetResponse "Widget state"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /widgets/{id}/suggestions [post]
func (controller *WidgetController) Suggest(c echo.Context) error {
	var dto model.SuggestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-body")})
	}

	state, err := controller.useCase.Suggest(c.Request().Context(), c.Param("id"), dto.Query)
	return controller.respond(c, http.StatusOK, state, err)
}

// Select godoc
// @Summary Select a suggestion
// @Description Clear the suggestion list and search the selected suggestion
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget id"
// @Param select body model.SelectDTO true "Selected suggestion"
// @Success 200 {object} model.WidgetResponse "Widget state"
// @Failure 404 {object} model.WidgetResponse "City not found"
// @Failure 502 {object} model.WidgetResponse "Weather provider unavailable"
// @Router /widgets/{id}/select [post]
func (controller *WidgetController) Select(c echo.Context) error {
	var dto model.SelectDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-body")})
	}

	state, err := controller.useCase.Select(c.Request().Context(), c.Param("id"), dto.Suggestion)
	return controller.respond(c, http.StatusOK, state, err)
}

// Locate godoc
// @Summary Send a geolocation fix
// @Description Resolve the weather at the host position. Only the first fix of a widget is honoured.
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget id"
// @Param location body model.GeolocationDTO true "Position or unavailable marker"
// @Success 200 {object} model.WidgetResponse "Widget state"
// @Failure 400 {object} map[string]string "Invalid position"
// @Failure 404 {object} model.WidgetResponse "Location not found"
// @Failure 502 {object} model.WidgetResponse "Weather provider unavailable"
// @Router /widgets/{id}/location [post]
func (controller *WidgetController) Locate(c echo.Context) error {
	var dto model.GeolocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-body")})
	}

	fix, err := controller.toFix(c, dto)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-position", err)})
	}

	state, err := controller.useCase.Locate(c.Request().Context(), c.Param("id"), fix)
	return controller.respond(c, http.StatusOK, state, err)
}

// Close godoc
// @Summary Unmount a widget
// @Description Remove a widget session
// @Tags widgets
// @Param id path string true "Widget id"
// @Success 204 "Widget closed"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /widgets/{id} [delete]
func (controller *WidgetController) Close(c echo.Context) error {
	if err := controller.useCase.Close(c.Request().Context(), c.Param("id")); err != nil {
		return controller.respond(c, http.StatusNoContent, entity.WidgetState{}, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *WidgetController) toFix(c echo.Context, dto model.GeolocationDTO) (widget.GeolocationFix, error) {
	if dto.Unavailable {
		return widget.GeolocationFix{Unavailable: true}, nil
	}
	if err := c.Validate(&dto.PositionDTO); err != nil {
		return widget.GeolocationFix{}, err
	}
	return widget.GeolocationFix{Coordinates: dto.Coordinates()}, nil
}

// respond maps use case errors onto status codes; alerts travel with the widget state
func (controller *WidgetController) respond(c echo.Context, status int, state entity.WidgetState, err error) error {
	switch {
	case err == nil:
		return c.JSON(status, controller.toResponse(state, nil))
	case errors.Is(err, widget.ErrWidgetNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("widget.error.not-found", c.Param("id"))})
	case errors.Is(err, widget.ErrInvalidCoordinates):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("widget.error.invalid-position", err)})
	case errors.Is(err, widget.ErrEmptyInput):
		return c.JSON(http.StatusBadRequest, controller.toResponse(state, widget.AlertFor(err)))
	case errors.Is(err, widget.ErrLocationNotFound):
		return c.JSON(http.StatusNotFound, controller.toResponse(state, widget.AlertFor(err)))
	case errors.Is(err, widget.ErrWeatherUnavailable):
		return c.JSON(http.StatusBadGateway, controller.toResponse(state, widget.AlertFor(err)))
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (controller *WidgetController) toResponse(state entity.WidgetState, alert *model.AlertDTO) model.WidgetResponse {
	response := model.WidgetResponse{
		ID:          state.ID,
		Suggestions: state.Suggestions,
		Alert:       alert,
	}
	if response.Suggestions == nil {
		response.Suggestions = []string{}
	}
	if state.Weather != nil {
		response.Weather = &model.WeatherDTO{
			Temperature:  state.Weather.Temperature,
			Humidity:     state.Weather.Humidity,
			WindSpeedKmh: state.Weather.WindSpeedKmh,
			Location:     state.Weather.Location,
			Icon:         string(state.Weather.Icon),
			IconURL:      controller.assetBaseURL + "/" + state.Weather.Icon.FileName(),
		}
	}
	return response
}
