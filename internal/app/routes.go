package app

import (
	"net/http"

	"diff-search/internal/observability"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {

	observability.InitMetrics()

	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.health)
	mux.HandleFunc("/changes", s.changes)
	mux.HandleFunc("/search", s.search)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
