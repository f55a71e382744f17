// Package web holds the embedded submission form.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
