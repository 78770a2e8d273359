package handler

import (
	"net/http"

	"madison/config"
	"madison/di"
	"madison/shared/logger"
)

// Handler is the serverless entrypoint. Each cold start builds the full
// dependency graph; warm invocations reuse the process.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
