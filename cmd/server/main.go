package main

import (
	"log"
	"ned-extinction-service/internal/adapters/ned"
	"ned-extinction-service/internal/api"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root. It wires the NED calculator
// adapter behind the provider port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	baseURL := getEnv("NED_BASE_URL", "")
	timeoutSeconds := getEnvInt("HTTP_TIMEOUT_SECONDS", 30)

	opts := []ned.Option{ned.WithTimeout(time.Duration(timeoutSeconds) * time.Second)}
	if baseURL != "" {
		opts = append(opts, ned.WithBaseURL(baseURL))
	}

	provider := ned.NewCalculator(opts...)
	router := api.NewRouter(provider)

	// Write timeout leaves room for a slow calculator round-trip.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}
