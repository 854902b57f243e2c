// Package web holds the embedded templates and static assets for the
// rendered pages.
package web

import "embed"

//go:embed templates/*.html static/*
var FS embed.FS
