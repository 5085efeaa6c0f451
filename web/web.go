// Package web holds the HTML templates of the site.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
