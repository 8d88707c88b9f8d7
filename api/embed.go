// Package api carries the OpenAPI contract served and enforced at runtime.
package api

import _ "embed"

//go:embed openapi.yaml
var Spec []byte
