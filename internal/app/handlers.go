package app

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"diff-search/internal/diff"
	"diff-search/internal/git"
	"diff-search/internal/observability"
	"diff-search/internal/search"
)

type resultsResponse struct {
	Results []diff.Record `json:"results"`
	Count   int           `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// changes returns every parsed line record, freshly aggregated.
func (s *Server) changes(w http.ResponseWriter, r *http.Request) {

	if !s.allow(w, r) {
		return
	}

	records, err := s.agg.Records(r.Context())
	if err != nil {
		s.toolFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultsResponse{Results: nonNil(records), Count: len(records)})
}

// search re-aggregates, re-parses, and filters in one shot. Nothing is
// kept between calls.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {

	if !s.allow(w, r) {
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		observability.Searches.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	records, err := s.agg.Records(r.Context())
	if err != nil {
		observability.Searches.WithLabelValues("unavailable").Inc()
		s.toolFailure(w, err)
		return
	}

	results, err := search.Run(records, opts)

	if errors.Is(err, search.ErrInvalidPattern) {
		// Bad query, not zero matches; the caller needs the reason.
		observability.Searches.WithLabelValues("invalid_pattern").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		observability.Searches.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	observability.Searches.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, resultsResponse{Results: nonNil(results), Count: len(results)})
}

func parseOptions(r *http.Request) (search.Options, error) {

	q := r.URL.Query()

	opts := search.Options{
		Query:         q.Get("q"),
		CaseSensitive: isTrue(q.Get("case")),
		WholeWord:     isTrue(q.Get("word")),
		Regex:         isTrue(q.Get("regex")),
	}

	file, source := q.Get("file"), q.Get("source")

	if file == "" && source == "" {
		return opts, nil
	}
	if file == "" || source == "" {
		return opts, errors.New("scope requires both file and source")
	}

	src, ok := diff.ParseSource(source)
	if !ok {
		return opts, errors.New("unknown source: " + source)
	}

	opts.Scope = &search.Scope{File: file, Source: src}
	return opts, nil
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}

func (s *Server) allow(w http.ResponseWriter, r *http.Request) bool {

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if s.limiter.Allow(host) {
		return true
	}

	observability.Searches.WithLabelValues("rate_limited").Inc()
	writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
	return false
}

func (s *Server) toolFailure(w http.ResponseWriter, err error) {

	s.logger.Error("aggregation failed", "err", err)

	status := http.StatusInternalServerError
	if errors.Is(err, git.ErrToolUnavailable) {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func nonNil(records []diff.Record) []diff.Record {
	if records == nil {
		return []diff.Record{}
	}
	return records
}
