package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"text/template"

	board "github.com/Magnus-Fjeldstad/nympenburgerstrasse54"
	"github.com/gorilla/mux"
)

func (h handlers) registerBoardHandler() {
	boardGET := h.handler.PathPrefix("/board").Methods("GET").Subrouter()
	boardGET.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.serveBoard(w, r, h.defaultStation)
	})
	boardGET.HandleFunc("/{station}", func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		h.serveBoard(w, r, vars["station"])
	})
}

func (h handlers) serveBoard(w http.ResponseWriter, r *http.Request, station string) {
	view, err := h.api.View(station, viewOptionsFromQuery(r))
	if err != nil {
		if errors.Is(err, board.ErrStationNotFound) {
			handleStationNotFound(w, h.tmpls, station)
			return
		}
		handleBoardRetreivalError(w, h.tmpls, station, err.Error())
		return
	}
	tmpl := "board.html"
	if len(view.Departures) == 0 {
		tmpl = "board-empty.html"
	}
	err = h.tmpls.ExecuteTemplate(w, tmpl, struct {
		View         board.View
		ForecastRows [][]board.DisplayHour
	}{
		View:         view,
		ForecastRows: splitIntoTabularFormat(view.Forecast, 6),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
}

// viewOptionsFromQuery lets a request shrink or grow the windows, e.g.
// /board/?hours=6&limit=8. Bad values fall through to the defaults.
func viewOptionsFromQuery(r *http.Request) board.ViewOptions {
	opts := board.ViewOptions{}
	queryParams := r.URL.Query()
	if v, err := strconv.Atoi(queryParams.Get("limit")); err == nil && v > 0 {
		opts.DepartureLimit = v
	}
	if v, err := strconv.Atoi(queryParams.Get("hours")); err == nil && v > 0 {
		opts.ForecastHours = v
	}
	return opts
}

func handleBoardRetreivalError(w http.ResponseWriter, tmpls *template.Template, station string, errMsg string) {
	err := tmpls.ExecuteTemplate(w, "station-error.html", struct {
		Station string
		Error   string
	}{
		Station: station,
		Error:   errMsg,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
}

func handleStationNotFound(w http.ResponseWriter, tmpls *template.Template, station string) {
	err := tmpls.ExecuteTemplate(w, "station-not-found.html", struct {
		Station string
	}{
		Station: station,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
}
