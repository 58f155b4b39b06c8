// Package quota tracks YouTube Data API quota consumption for one process.
package quota

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/trendscope/youtube-viral-analyzer-go/pkg/logger"
)

// Usage is a snapshot of today's quota consumption.
type Usage struct {
	Date      string `json:"date"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Threshold int    `json:"threshold"`
}

// ErrExhausted is returned when an operation would push usage past the
// configured threshold.
type ErrExhausted struct {
	Required  int
	Remaining int
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("quota exhausted: need %d units, %d remaining before threshold", e.Required, e.Remaining)
}

// Manager tracks daily quota usage in memory. Counters reset at UTC
// midnight, which matches when the Data API resets its own accounting.
// All methods are safe for concurrent use.
type Manager struct {
	mu               sync.Mutex
	dailyLimit       int
	thresholdPercent int
	used             int
	day              string
	now              func() time.Time
}

// NewManager creates a quota manager. Zero or out-of-range arguments fall
// back to the Data API default limit of 10000 units and a 90% threshold.
func NewManager(dailyLimit, thresholdPercent int) *Manager {
	if dailyLimit <= 0 {
		dailyLimit = 10000
	}
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		thresholdPercent = 90
	}

	return &Manager{
		dailyLimit:       dailyLimit,
		thresholdPercent: thresholdPercent,
		now:              time.Now,
	}
}

// SetClock injects a deterministic clock (used by tests).
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Reserve checks that cost units fit under the threshold and immediately
// records them. The caller should Release on upstream failure so a failed
// API call does not consume budget.
func (m *Manager) Reserve(cost int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDayLocked()

	threshold := m.thresholdLocked()
	if m.used+cost > threshold {
		return &ErrExhausted{Required: cost, Remaining: threshold - m.used}
	}

	m.used += cost
	return nil
}

// Release returns previously reserved units, clamped at zero.
func (m *Manager) Release(cost int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDayLocked()
	m.used -= cost
	if m.used < 0 {
		m.used = 0
	}
}

// Record charges units unconditionally and logs the running total. Used for
// costs discovered after the fact.
func (m *Manager) Record(cost int, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDayLocked()
	m.used += cost

	if logger.Log != nil {
		logger.Log.Debug("Quota usage recorded",
			zap.String("operation", operation),
			zap.Int("cost", cost),
			zap.Int("used", m.used),
			zap.Int("limit", m.dailyLimit))
	}
}

// Exhausted reports whether usage has reached the threshold.
func (m *Manager) Exhausted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDayLocked()
	return m.used >= m.thresholdLocked()
}

// Snapshot returns today's usage figures.
func (m *Manager) Snapshot() Usage {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDayLocked()
	threshold := m.thresholdLocked()
	remaining := threshold - m.used
	if remaining < 0 {
		remaining = 0
	}

	return Usage{
		Date:      m.day,
		Used:      m.used,
		Limit:     m.dailyLimit,
		Remaining: remaining,
		Threshold: threshold,
	}
}

// rollDayLocked resets the counter when the UTC date changes. Callers must
// hold mu.
func (m *Manager) rollDayLocked() {
	today := m.now().UTC().Format("2006-01-02")
	if today != m.day {
		m.day = today
		m.used = 0
	}
}

func (m *Manager) thresholdLocked() int {
	return (m.dailyLimit * m.thresholdPercent) / 100
}
