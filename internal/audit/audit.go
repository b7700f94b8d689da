// Package audit is the append-only trail of tracked session actions.
package audit

import (
	"context"
	"time"

	"healthlock/internal/utils"
	"healthlock/pkg/types"
)

type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

func RiskLevel(action string) Risk {
	switch action {
	case types.ActionRecordAccess:
		return RiskHigh
	case types.ActionQRGenerated:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Log keeps entries newest first. It is not safe for concurrent use; the
// owning session serialises access.
type Log struct {
	entries []types.AuditEntry
	lastID  int64
	now     func() time.Time
	origin  func() Origin
}

type Option func(*Log)

func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

func WithOriginSource(origin func() Origin) Option {
	return func(l *Log) { l.origin = origin }
}

func NewLog(opts ...Option) *Log {
	l := &Log{
		now:    time.Now,
		origin: SimulatedOrigin(""),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record prepends an entry. An origin carried by ctx takes precedence over
// the log's origin source.
func (l *Log) Record(ctx context.Context, action, details, actor string) types.AuditEntry {
	origin, ok := originFromContext(ctx)
	if !ok {
		origin = l.origin()
	}

	l.lastID++
	entry := types.AuditEntry{
		ID:        l.lastID,
		Timestamp: l.now().UTC(),
		Action:    action,
		Details:   details,
		Actor:     actor,
		IP:        origin.IP,
		Simulated: origin.Simulated,
	}
	if origin.Location != "" {
		entry.Location = utils.StringPtr(origin.Location)
	}

	l.entries = append([]types.AuditEntry{entry}, l.entries...)
	return entry
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []types.AuditEntry {
	out := make([]types.AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

type Summary struct {
	Total    int            `json:"total"`
	ByAction map[string]int `json:"byAction"`
	ByActor  map[string]int `json:"byActor"`
	ByRisk   map[Risk]int   `json:"byRisk"`
}

func (l *Log) Summary() Summary {
	s := Summary{
		Total:    len(l.entries),
		ByAction: make(map[string]int),
		ByActor:  make(map[string]int),
		ByRisk:   make(map[Risk]int),
	}
	for _, e := range l.entries {
		s.ByAction[e.Action]++
		s.ByActor[e.Actor]++
		s.ByRisk[RiskLevel(e.Action)]++
	}
	return s
}
