package controller

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "go-weather/docs"
)

type SwaggerController struct {
	api *echo.Group
}

func NewSwaggerController(api *echo.Group) *SwaggerController {
	return &SwaggerController{api: api}
}

// InitSwaggerRoutes serves the generated API docs under /swagger
func (controller *SwaggerController) InitSwaggerRoutes() {
	controller.api.GET("/swagger/*", echoSwagger.WrapHandler)
}
