package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mutex          sync.RWMutex
	checks         int64
	palindromes    int64
	nonPalindromes int64
	recordFailures int64
	statusCodes    map[int]int64
	startTime      time.Time
}

type Snapshot struct {
	TotalChecks    int64         `json:"total_checks"`
	Palindromes    int64         `json:"palindromes"`
	NonPalindromes int64         `json:"non_palindromes"`
	RecordFailures int64         `json:"record_failures"`
	StatusCodes    map[int]int64 `json:"status_codes"`
	Uptime         time.Duration `json:"uptime"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		statusCodes: make(map[int]int64),
		startTime:   time.Now(),
	}
}

func (m *Metrics) RecordCheck(isPalindrome bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.checks++
	if isPalindrome {
		m.palindromes++
	} else {
		m.nonPalindromes++
	}
}

func (m *Metrics) RecordResponse(statusCode int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.statusCodes[statusCode]++
}

func (m *Metrics) RecordFailure() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.recordFailures++
}

func (m *Metrics) Snapshot() Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	codes := make(map[int]int64, len(m.statusCodes))
	for code, count := range m.statusCodes {
		codes[code] = count
	}

	return Snapshot{
		TotalChecks:    m.checks,
		Palindromes:    m.palindromes,
		NonPalindromes: m.nonPalindromes,
		RecordFailures: m.recordFailures,
		StatusCodes:    codes,
		Uptime:         time.Since(m.startTime),
	}
}
