package metrics_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvaldezr/palindromo/internal/metrics"
)

var _ = Describe("Collector", func() {
	var (
		collector *metrics.Collector
		ctx       context.Context
		cancel    context.CancelFunc
	)

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(os.Stdout, nil))
		collector = metrics.NewCollector(100, log)
		ctx, cancel = context.WithCancel(context.Background())
		collector.Start(ctx)
	})

	AfterEach(func() {
		cancel()
	})

	It("processes check events", func() {
		collector.EventChannel() <- metrics.Event{
			Type:         metrics.EventCheckPerformed,
			Timestamp:    time.Now(),
			IsPalindrome: true,
		}
		collector.EventChannel() <- metrics.Event{
			Type:         metrics.EventCheckPerformed,
			Timestamp:    time.Now(),
			IsPalindrome: false,
		}

		Eventually(func() int64 {
			return collector.Snapshot().TotalChecks
		}).Should(Equal(int64(2)))
		Expect(collector.Snapshot().Palindromes).To(Equal(int64(1)))
	})

	It("processes response events", func() {
		collector.EventChannel() <- metrics.Event{
			Type:       metrics.EventResponseCompleted,
			Timestamp:  time.Now(),
			StatusCode: http.StatusBadRequest,
		}

		Eventually(func() int64 {
			return collector.Snapshot().StatusCodes[http.StatusBadRequest]
		}).Should(Equal(int64(1)))
	})

	It("processes record failure events", func() {
		collector.EventChannel() <- metrics.Event{
			Type:      metrics.EventRecordFailed,
			Timestamp: time.Now(),
		}

		Eventually(func() int64 {
			return collector.Snapshot().RecordFailures
		}).Should(Equal(int64(1)))
	})

	It("drains buffered events on shutdown", func() {
		for i := 0; i < 10; i++ {
			collector.EventChannel() <- metrics.Event{
				Type:         metrics.EventCheckPerformed,
				Timestamp:    time.Now(),
				IsPalindrome: true,
			}
		}
		cancel()

		Eventually(func() int64 {
			return collector.Snapshot().TotalChecks
		}).Should(Equal(int64(10)))
	})
})

var _ = Describe("Handler", func() {
	var collector *metrics.Collector

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(os.Stdout, nil))
		collector = metrics.NewCollector(100, log)
	})

	It("serves a JSON snapshot", func() {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()

		collector.Handler()(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var snap metrics.Snapshot
		Expect(json.Unmarshal(w.Body.Bytes(), &snap)).To(Succeed())
		Expect(snap.TotalChecks).To(BeZero())
	})

	It("rejects non-GET methods", func() {
		req := httptest.NewRequest(http.MethodPost, "/metrics", nil)
		w := httptest.NewRecorder()

		collector.Handler()(w, req)

		Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
	})
})
