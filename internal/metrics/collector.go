package metrics

import (
	"context"
	"log/slog"
	"time"
)

type EventType string

const (
	EventCheckPerformed    EventType = "check_performed"
	EventResponseCompleted EventType = "response_completed"
	EventRecordFailed      EventType = "record_failed"
)

type Event struct {
	Type         EventType
	Timestamp    time.Time
	IsPalindrome bool
	StatusCode   int
}

type Collector struct {
	eventCh chan Event
	metrics *Metrics
	logger  *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	return &Collector{
		eventCh: make(chan Event, bufferSize),
		metrics: NewMetrics(),
		logger:  logger,
	}
}

func (c *Collector) EventChannel() chan<- Event {
	return c.eventCh
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Metrics collector started")
	defer c.logger.Info("Metrics collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) processEvent(event Event) {
	switch event.Type {
	case EventCheckPerformed:
		c.metrics.RecordCheck(event.IsPalindrome)

	case EventResponseCompleted:
		c.metrics.RecordResponse(event.StatusCode)

	case EventRecordFailed:
		c.metrics.RecordFailure()
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		default:
			return
		}
	}
}

func (c *Collector) Snapshot() Snapshot {
	return c.metrics.Snapshot()
}
