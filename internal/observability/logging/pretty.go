package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// prettyLogger writes single-line human-readable messages. It is the
// default for interactive use; events are emitted only by the JSONL
// logger.
type prettyLogger struct {
	writer   io.Writer
	closer   io.Closer
	minLevel int
}

func (p *prettyLogger) log(level, component, msg string, fields ...any) {
	if levelPriority(level) < p.minLevel {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %s: %s", strings.ToUpper(level), component, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	fmt.Fprintln(p.writer, b.String())
}

func (p *prettyLogger) Debug(component, msg string, fields ...any) {
	p.log(LevelDebug, component, msg, fields...)
}

func (p *prettyLogger) Info(component, msg string, fields ...any) {
	p.log(LevelInfo, component, msg, fields...)
}

func (p *prettyLogger) Warn(component, msg string, fields ...any) {
	p.log(LevelWarn, component, msg, fields...)
}

func (p *prettyLogger) Error(component, msg string, fields ...any) {
	p.log(LevelError, component, msg, fields...)
}

func (p *prettyLogger) Event(ctx context.Context, event string, fields map[string]any) {}

func (p *prettyLogger) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}
