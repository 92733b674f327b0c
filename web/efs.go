package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed public/*
var distFS embed.FS

// GetFileSystem returns the static files to serve. A non-empty dir
// overrides the embedded assets for frontend development.
func GetFileSystem(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}

	return fs.Sub(distFS, "public")
}
