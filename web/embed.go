package web

import (
	"embed"
	"io/fs"
)

// Dist embeds the built console bundle.
//
//go:embed all:dist
var Dist embed.FS

// Assets returns the bundle rooted at dist/.
func Assets() fs.FS {
	sub, err := fs.Sub(Dist, "dist")
	if err != nil {
		panic(err)
	}
	return sub
}
