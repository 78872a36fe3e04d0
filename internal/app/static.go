package app

import (
	_ "embed"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

//go:embed static/static-file-error.html
var staticFileErrorPage []byte

// serveIndex serves the client's index.html, or a page explaining how to build
// the client when it is missing.
func (app *application) serveIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(app.config.staticDir, "index.html")

	info, err := os.Stat(index)
	if err != nil || info.IsDir() {
		app.contextGetLogger(r).Warn("client index not found", "static_dir", app.config.staticDir)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(staticFileErrorPage)
		return
	}

	http.ServeFile(w, r, index)
}

func (app *application) serveStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + chi.URLParam(r, "*"))
	if name == "/" {
		app.serveIndex(w, r)
		return
	}

	file := filepath.Join(app.config.staticDir, filepath.FromSlash(name))

	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		app.notFoundResponse(w, r)
		return
	}

	http.ServeFile(w, r, file)
}
