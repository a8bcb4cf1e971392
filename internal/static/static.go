// Package static embeds the stylesheet, the parallax script, the record
// images and the image placeholder.
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// FS returns the embedded assets rooted at the assets directory.
func FS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return sub
}
