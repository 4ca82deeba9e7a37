package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/spoo-437/voiceofdine-ai/internal/app"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

type Handlers struct{ Q *app.ReportService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/entities", h.listEntities)
	s.mux.Get("/v1/entities/{name}/report", h.entityReport)
	s.mux.Get("/v1/entities/{name}/reviews", h.listReviews)
	s.mux.Get("/v1/benchmark", h.benchmark)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	// If the client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func entityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if un, err := url.PathUnescape(name); err == nil {
		return un
	}
	return name
}

func (h *Handlers) listEntities(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Entities(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to list entities")
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) entityReport(w http.ResponseWriter, r *http.Request) {
	name := entityName(r)
	if name == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Name", "entity name must not be empty")
		return
	}
	rep, err := h.Q.EntityReport(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no reviews found for this entity; choose another or upload data")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "report computation failed")
		return
	}
	writeJSON(w, r, rep)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	name := entityName(r)

	limit := 20
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}

	out, err := h.Q.RecentReviews(r.Context(), name, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no reviews found for this entity")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to list reviews")
		return
	}

	type reviewOut struct {
		Entity    string   `json:"entity"`
		Text      string   `json:"text"`
		Rating    *float64 `json:"rating"`
		Sentiment string   `json:"sentiment"`
	}
	resp := make([]reviewOut, 0, len(out))
	for _, rv := range out {
		resp = append(resp, reviewOut{
			Entity:    rv.Entity,
			Text:      rv.Text,
			Rating:    rv.Rating,
			Sentiment: string(rv.Sentiment),
		})
	}
	writeJSON(w, r, resp)
}

func (h *Handlers) benchmark(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Q.Benchmark(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "benchmark computation failed")
		return
	}
	writeJSON(w, r, rows)
}
