package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

const HealthPath = "/healthz"

func WithHealthCheck(customHandlerFunc http.HandlerFunc) ServerOption {
	defaultHandler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(router *mux.Router) {
		handler := defaultHandler
		if customHandlerFunc != nil {
			handler = customHandlerFunc
		}

		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

// WithMetricsEndpoint exposes a raw handler, intended for the prometheus
// scrape endpoint.
func WithMetricsEndpoint(path string, handler http.Handler) ServerOption {
	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, path)).
			Methods(http.MethodGet).
			Path(path).
			Handler(handler)
	}
}
