// Package api embeds the OpenAPI contract served at /swagger and used to
// validate incoming requests.
package api

import (
	_ "embed"
)

//go:embed openapi.yml
var OpenAPI []byte
