package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/yohoo/startpage/internal/fetch"
	"github.com/yohoo/startpage/internal/httpserver/deps"
	"github.com/yohoo/startpage/internal/logger"
)

// titleResponse is the wire shape of every /fetch-title reply. Exactly one
// of Title and Error is non-null.
type titleResponse struct {
	Title *string `json:"title"`
	URL   string  `json:"url"`
	Error *string `json:"error"`
}

// FetchTitle serves GET /fetch-title?url=...
// Validation failures come back as 400, fetch failures as 500; both carry
// a descriptive error string. A request failure never kills the process.
func FetchTitle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("url")

		if err := fetch.ValidateURL(raw); err != nil {
			d.Logger.Warn("rejected fetch-title request",
				logger.String("url", raw),
				logger.Error(err))
			writeTitle(w, http.StatusBadRequest, titleResponse{URL: raw, Error: errString(err)})
			return
		}

		title, err := d.Fetcher.FetchTitle(r.Context(), raw)
		if err != nil {
			d.Logger.Warn("title fetch failed",
				logger.String("url", raw),
				logger.Error(err))
			writeTitle(w, http.StatusInternalServerError, titleResponse{URL: raw, Error: errString(err)})
			return
		}

		d.Logger.Info("title fetched",
			logger.String("url", raw),
			logger.String("title", title))
		writeTitle(w, http.StatusOK, titleResponse{Title: &title, URL: raw})
	}
}

func writeTitle(w http.ResponseWriter, status int, resp titleResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func errString(err error) *string {
	s := err.Error()
	return &s
}
