package api

import (
	"ned-extinction-service/internal/api/handlers"
	"ned-extinction-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. Handlers stay unaware of the concrete calculator adapter.
func NewRouter(provider ports.ExtinctionProvider) http.Handler {
	mux := http.NewServeMux()

	extHandler := &handlers.ExtinctionHandler{Provider: provider}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/extinctions", extHandler.Lookup)

	return loggingMiddleware(mux)
}
