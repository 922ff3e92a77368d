package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html 404.html public
var files embed.FS

func IndexPage() []byte {
	return mustRead("index.html")
}

func NotFoundPage() []byte {
	return mustRead("404.html")
}

// Public exposes the static assets served under /public.
func Public() fs.FS {
	sub, err := fs.Sub(files, "public")
	if err != nil {
		panic(err)
	}
	return sub
}

func mustRead(name string) []byte {
	b, err := files.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return b
}
