package handlers

import (
	"encoding/json"
	"net/http"
)

// The station picker filters client-side against the full name list; the
// suggest endpoint backs the non-JS fallback with a capped prefix lookup.
func (h handlers) registerStationsHandler() {
	stationsGET := h.handler.PathPrefix("/stations").Methods("GET").Subrouter()
	stationsGET.HandleFunc("/names", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, h.api.StationNames())
	})
	stationsGET.HandleFunc("/suggest", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		names := h.api.Suggest(query)
		if names == nil {
			names = []string{}
		}
		writeJSON(w, names)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
