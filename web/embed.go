// Package web embeds the dashboard frontend into the server binary so the
// container ships a single artifact.
package web

import "embed"

// FS holds the static dashboard assets.
//
//go:embed index.html
var FS embed.FS
