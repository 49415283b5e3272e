// Package web holds the browser dashboard served at /.
package web

import _ "embed"

// IndexHTML is the single-page dashboard.
//
//go:embed index.html
var IndexHTML string
