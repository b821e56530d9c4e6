// Package tern provides the debug log facility: a bounded in-memory ring
// of recent entries behind a zap core, so an application can surface its
// own logs in a widget without ever writing to the controlled terminal.
package tern

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEntry is one captured log record.
type LogEntry struct {
	Time    time.Time
	Level   zapcore.Level
	Message string
}

// LogRing keeps the most recent entries up to a fixed capacity.
type LogRing struct {
	mu      sync.Mutex
	entries []LogEntry
	max     int
	enc     zapcore.Encoder
}

// NewLogRing creates a ring holding at most max entries.
func NewLogRing(max int) *LogRing {
	if max <= 0 {
		max = 1000
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.LevelKey = ""
	return &LogRing{
		max: max,
		enc: zapcore.NewConsoleEncoder(cfg),
	}
}

// Logger returns a zap logger that records into the ring.
func (r *LogRing) Logger() *zap.Logger {
	return zap.New(&ringCore{ring: r, level: zapcore.DebugLevel})
}

// Entries returns a snapshot of the captured entries, oldest first.
func (r *LogRing) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of captured entries.
func (r *LogRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear drops all entries.
func (r *LogRing) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

func (r *LogRing) append(e LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

// ringCore is a zapcore.Core that renders each entry with the ring's
// encoder and appends it.
type ringCore struct {
	ring   *LogRing
	level  zapcore.Level
	fields []zapcore.Field
}

func (c *ringCore) Enabled(level zapcore.Level) bool {
	return level >= c.level
}

func (c *ringCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(clone.fields[:len(clone.fields):len(clone.fields)], fields...)
	return &clone
}

func (c *ringCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *ringCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := append(c.fields[:len(c.fields):len(c.fields)], fields...)

	line, err := c.ring.enc.EncodeEntry(entry, all)
	if err != nil {
		return err
	}
	msg := line.String()
	line.Free()

	// Trim the trailing newline the console encoder adds.
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}

	c.ring.append(LogEntry{Time: entry.Time, Level: entry.Level, Message: msg})
	return nil
}

func (c *ringCore) Sync() error { return nil }
