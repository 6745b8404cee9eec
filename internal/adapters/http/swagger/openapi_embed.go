package swagger

import _ "embed"

// OpenAPI is the embedded openapi.yaml document.
//
//go:embed openapi.yaml
var OpenAPI []byte
