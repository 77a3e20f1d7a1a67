package rpncalc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// testLogHandler captures log records as JSON lines.
type testLogHandler struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	attrs []slog.Attr
}

func newTestLogHandler() *testLogHandler {
	return &testLogHandler{}
}

func (h *testLogHandler) logger() *slog.Logger {
	return slog.New(h)
}

func (h *testLogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, a := range h.attrs {
		data[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	return json.NewEncoder(&h.buf).Encode(data)
}

func (h *testLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &childHandler{parent: h, attrs: attrs}
}

func (h *testLogHandler) WithGroup(string) slog.Handler {
	return h
}

// childHandler shares the parent's buffer but carries extra attrs.
type childHandler struct {
	parent *testLogHandler
	attrs  []slog.Attr
}

func (c *childHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return c.parent.Enabled(ctx, l)
}

func (c *childHandler) Handle(ctx context.Context, r slog.Record) error {
	r = r.Clone()
	r.AddAttrs(c.attrs...)
	return c.parent.Handle(ctx, r)
}

func (c *childHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &childHandler{parent: c.parent, attrs: append(append([]slog.Attr{}, c.attrs...), attrs...)}
}

func (c *childHandler) WithGroup(string) slog.Handler {
	return c
}

func (h *testLogHandler) records() []map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()

	var records []map[string]any
	for _, line := range bytes.Split(h.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil {
			records = append(records, m)
		}
	}
	return records
}

func (h *testLogHandler) find(msg string) map[string]any {
	for _, r := range h.records() {
		if r["msg"] == msg {
			return r
		}
	}
	return nil
}
