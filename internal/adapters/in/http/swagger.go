package http

import (
	"encoding/json"
	"sync"

	"hubops/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// embeddedSpec hands the OpenAPI document to swag as JSON.
type embeddedSpec struct{}

var specJSON = sync.OnceValue(func() string {
	doc, err := openapi3.NewLoader().LoadFromData(api.OpenAPI)
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
})

func (embeddedSpec) ReadDoc() string {
	return specJSON()
}

func init() {
	swag.Register(swag.Name, embeddedSpec{})
}

// RegisterSwagger serves the interactive API documentation at /swagger/.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
