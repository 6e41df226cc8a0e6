// Package schema instruments OpenAPI schema.
package schema

import (
	oapi "github.com/swaggest/openapi-go"
)

// SetupOpenAPI sets up API documentation.
func SetupOpenAPI(s oapi.SpecSchema) {
	s.SetTitle("Todos Service")
	s.SetDescription("This service manages a single list of todos, mutations are also available as named operations.")
	s.SetVersion("1.0.0")
}
