package main

import (
	"context"
	"flag"
	"time"

	"github.com/tailored-agentic-units/recordstore/observability"
)

// CLI event types.
const (
	EventLookupMiss observability.EventType = "recordstore.lookup.miss"
	EventFailed     observability.EventType = "recordstore.failed"
)

func emit(ctx context.Context, obs observability.Observer, typ observability.EventType, level observability.Level, data map[string]any) {
	obs.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "cmd.recordstore",
		Data:      data,
	})
}

// setFlags returns the names of flags given on the command line, so that
// any id, negative ones included, can be passed to -find-id and -delete-id.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
