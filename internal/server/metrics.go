package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics tracks API operational counters.
type Metrics struct {
	// Counters
	requestsTotal atomic.Int64
	checkInsTotal atomic.Int64
	projectsAdded atomic.Int64
	rowsImported  atomic.Int64
	errorsTotal   atomic.Int64

	// Gauges with mutex for complex types
	mu            sync.RWMutex
	lastLatencyMs int64
	lastCheckInAt time.Time
	lastError     string
	lastErrorAt   time.Time

	// Error breakdown
	errorsByCategory map[string]int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		errorsByCategory: make(map[string]int64),
	}
}

// MetricsSnapshot represents a point-in-time view of metrics.
type MetricsSnapshot struct {
	RequestsTotal    int64            `json:"requests_total"`
	CheckInsTotal    int64            `json:"check_ins_total"`
	ProjectsAdded    int64            `json:"projects_added_total"`
	RowsImported     int64            `json:"rows_imported_total"`
	ErrorsTotal      int64            `json:"errors_total"`
	LastLatencyMs    int64            `json:"last_latency_ms"`
	LastCheckInAt    *time.Time       `json:"last_check_in_at,omitempty"`
	LastError        string           `json:"last_error,omitempty"`
	LastErrorAt      *time.Time       `json:"last_error_at,omitempty"`
	ErrorsByCategory map[string]int64 `json:"errors_by_category,omitempty"`
}

// Snapshot returns a copy of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		RequestsTotal:    m.requestsTotal.Load(),
		CheckInsTotal:    m.checkInsTotal.Load(),
		ProjectsAdded:    m.projectsAdded.Load(),
		RowsImported:     m.rowsImported.Load(),
		ErrorsTotal:      m.errorsTotal.Load(),
		LastLatencyMs:    m.lastLatencyMs,
		LastError:        m.lastError,
		ErrorsByCategory: make(map[string]int64, len(m.errorsByCategory)),
	}

	if !m.lastCheckInAt.IsZero() {
		t := m.lastCheckInAt
		snap.LastCheckInAt = &t
	}
	if !m.lastErrorAt.IsZero() {
		t := m.lastErrorAt
		snap.LastErrorAt = &t
	}

	for k, v := range m.errorsByCategory {
		snap.ErrorsByCategory[k] = v
	}

	return snap
}

// RecordRequest records a handled request and its latency.
func (m *Metrics) RecordRequest(latencyMs int64) {
	m.requestsTotal.Add(1)

	m.mu.Lock()
	m.lastLatencyMs = latencyMs
	m.mu.Unlock()
}

// RecordCheckIn records a check-in written at the given instant.
func (m *Metrics) RecordCheckIn(at time.Time) {
	m.checkInsTotal.Add(1)

	m.mu.Lock()
	m.lastCheckInAt = at
	m.mu.Unlock()
}

// RecordProjectAdded records an added project.
func (m *Metrics) RecordProjectAdded() {
	m.projectsAdded.Add(1)
}

// RecordImport records n check-ins appended from a spreadsheet.
func (m *Metrics) RecordImport(n int) {
	m.rowsImported.Add(int64(n))
}

// RecordError records an error with category.
func (m *Metrics) RecordError(category string, err error) {
	m.errorsTotal.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastError = err.Error()
	m.lastErrorAt = time.Now()

	if category != "" {
		m.errorsByCategory[category]++
	}
}

// ErrorsTotal returns the total errors.
func (m *Metrics) ErrorsTotal() int64 {
	return m.errorsTotal.Load()
}

// Reset resets all metrics to zero.
func (m *Metrics) Reset() {
	m.requestsTotal.Store(0)
	m.checkInsTotal.Store(0)
	m.projectsAdded.Store(0)
	m.rowsImported.Store(0)
	m.errorsTotal.Store(0)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastLatencyMs = 0
	m.lastCheckInAt = time.Time{}
	m.lastError = ""
	m.lastErrorAt = time.Time{}
	m.errorsByCategory = make(map[string]int64)
}

// RequestMetrics counts every request and records its latency.
func RequestMetrics(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordRequest(time.Since(start).Milliseconds())
	}
}
