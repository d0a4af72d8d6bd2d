package main

import (
	"net/http"

	"github.com/jvaldezr/palindromo/internal/handler"
	"github.com/jvaldezr/palindromo/internal/metrics"
)

func setupRouter(palindromeHandler *handler.PalindromeHandler, metricsCollector *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", palindromeHandler.ServeHTTP)
	mux.HandleFunc("/metrics", metricsCollector.Handler())

	return mux
}
