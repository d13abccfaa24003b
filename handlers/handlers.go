package handlers

import (
	"net/http"
	"text/template"

	"io/fs"

	board "github.com/Magnus-Fjeldstad/nympenburgerstrasse54"
	"github.com/Magnus-Fjeldstad/nympenburgerstrasse54/metrics"
	"github.com/gorilla/mux"
	"github.com/unrolled/logger"
)

func RegisterHandlers(handler *mux.Router, api board.BoardAPI, defaultStation string, collector *metrics.Collector, static fs.FS, templates fs.FS) {
	h := handlers{
		handler:        handler,
		api:            api,
		defaultStation: defaultStation,
	}
	tmpls, err := template.New("").Delims("[[", "]]").ParseFS(templates, "*.html")
	if err != nil {
		panic(err)
	}
	h.tmpls = tmpls

	l := logger.New()
	handler.Use(l.Handler)

	h.registerStatic(static)
	h.registerIndex()
	h.registerBoardHandler()
	h.registerStationsHandler()
	handler.Handle("/metrics", collector.Handler())
}

type handlers struct {
	handler        *mux.Router
	api            board.BoardAPI
	defaultStation string
	tmpls          *template.Template
}

func (h handlers) registerIndex() {
	h.handler.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/board/", 302)
	})
}
