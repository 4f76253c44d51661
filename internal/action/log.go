package action

import (
	"sync"

	"github.com/vk/vbaemu/internal/value"
)

// Well-known record categories.
const (
	CategoryExecuteCommand = "Execute Command"
	CategoryDisplayMessage = "Display Message"
)

// Record is a structured note of an emulated side effect.
type Record struct {
	Category string      `json:"category"`
	Value    value.Value `json:"value"`
	Source   string      `json:"source"`
}

// Reporter is the append-only sink intrinsic functions report to.
type Reporter interface {
	ReportAction(category string, v value.Value, source string)
}

// Log is an in-memory Reporter that keeps records in insertion order.
type Log struct {
	mu      sync.Mutex
	records []Record
}

// NewLog creates an empty action log.
func NewLog() *Log {
	return &Log{}
}

// ReportAction appends a record.
func (l *Log) ReportAction(category string, v value.Value, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{Category: category, Value: v, Source: source})
}

// Records returns a snapshot of all records in insertion order.
func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.records...)
}

// Len returns the number of records appended so far.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
