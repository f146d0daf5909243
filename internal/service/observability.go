package service

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Observer receives service-level events for debugging and tracing.
type Observer interface {
	Event(name string, fields map[string]any)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) Event(string, map[string]any) {}

// LogObserver writes events as single lines to w (typically stderr).
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates a LogObserver writing to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) Event(name string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	line := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), name)
	for _, k := range keys {
		line += fmt.Sprintf(" %s=%v", k, fields[k])
	}
	fmt.Fprintln(o.w, line)
}
