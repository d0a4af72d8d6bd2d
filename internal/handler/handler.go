package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jvaldezr/palindromo/internal/checklog"
	"github.com/jvaldezr/palindromo/internal/metrics"
	"github.com/jvaldezr/palindromo/internal/palindrome"
)

type PalindromeHandler struct {
	logger           *slog.Logger
	recorder         checklog.Recorder
	metricsCollector *metrics.Collector
}

func NewPalindromeHandler(logger *slog.Logger, recorder checklog.Recorder, collector *metrics.Collector) *PalindromeHandler {
	return &PalindromeHandler{
		logger:           logger,
		recorder:         recorder,
		metricsCollector: collector,
	}
}

func (h *PalindromeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("Panic while handling request",
				slog.Any("panic", rec),
				slog.String("path", r.URL.Path))
			h.writePlain(w, http.StatusInternalServerError, "Error interno del servidor")
		}
	}()

	h.logger.Info("Received request",
		slog.String("from", extractClientIP(r)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("user_agent", r.UserAgent()))

	if r.Method != http.MethodGet {
		h.writePlain(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	switch r.URL.Path {
	case "/":
		h.serveForm(w)
	case "/comprobar":
		h.serveCheck(w, r)
	default:
		h.serveNotFound(w)
	}
}

func (h *PalindromeHandler) serveForm(w http.ResponseWriter) {
	h.writeHTML(w, http.StatusOK, formPage)
}

func (h *PalindromeHandler) serveNotFound(w http.ResponseWriter) {
	h.writeHTML(w, http.StatusNotFound, notFoundPage)
}

func (h *PalindromeHandler) serveCheck(w http.ResponseWriter, r *http.Request) {
	// Last occurrence wins when the parameter is repeated.
	values := r.URL.Query()["palabra"]
	var word string
	if len(values) > 0 {
		word = strings.TrimSpace(values[len(values)-1])
	}

	if word == "" {
		h.writePlain(w, http.StatusBadRequest, "Falta el parámetro 'palabra'")
		return
	}

	isPalindrome := palindrome.IsPalindrome(word)

	h.emitEvent(metrics.Event{
		Type:         metrics.EventCheckPerformed,
		Timestamp:    time.Now(),
		IsPalindrome: isPalindrome,
	})

	// Best effort: a failed append never affects the response.
	if err := h.recorder.Record(word, isPalindrome); err != nil {
		h.logger.Error("Failed to append check log",
			slog.String("word", word),
			slog.Any("err", err))
		h.emitEvent(metrics.Event{
			Type:      metrics.EventRecordFailed,
			Timestamp: time.Now(),
		})
	}

	verdict := "NO es"
	if isPalindrome {
		verdict = "es"
	}

	h.writePlain(w, http.StatusOK, fmt.Sprintf("La palabra %s %s un palíndromo", word, verdict))
}

func (h *PalindromeHandler) writePlain(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	io.WriteString(w, body)

	h.emitEvent(metrics.Event{
		Type:       metrics.EventResponseCompleted,
		Timestamp:  time.Now(),
		StatusCode: statusCode,
	})
}

func (h *PalindromeHandler) writeHTML(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	io.WriteString(w, body)

	h.emitEvent(metrics.Event{
		Type:       metrics.EventResponseCompleted,
		Timestamp:  time.Now(),
		StatusCode: statusCode,
	})
}

func (h *PalindromeHandler) emitEvent(event metrics.Event) {
	if h.metricsCollector == nil {
		return
	}

	select {
	case h.metricsCollector.EventChannel() <- event:
	default:
	}
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
