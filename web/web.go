// Package web holds static assets embedded into the binary.
package web

import _ "embed"

// IndexHTML is the landing page served on GET /.
//
//go:embed index.html
var IndexHTML []byte
