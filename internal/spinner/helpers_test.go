package spinner

import (
	"context"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/goliatone/go-loading/pkg/interfaces"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{level: level, msg: msg, args: args})
}

func (r *recordingLogger) Trace(msg string, args ...any) { r.record("trace", msg, args) }
func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg, args) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg, args) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg, args) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg, args) }
func (r *recordingLogger) Fatal(msg string, args ...any) { r.record("fatal", msg, args) }

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) count(level, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.level == level && e.msg == msg {
			n++
		}
	}
	return n
}

// sequentialIDs yields a1, a2, ... so expected markup is stable.
func sequentialIDs() interfaces.IDGenerator {
	var mu sync.Mutex
	n := 0
	return interfaces.IDGeneratorFunc(func(string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "a" + strconv.Itoa(n)
	})
}

func assertNumber(t *testing.T, w *Widget, key string, want float64) {
	t.Helper()
	got, ok := w.Number(key)
	if !ok {
		t.Fatalf("expected %s in bag", key)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", key, got, want)
	}
}

func newRing(t *testing.T, opts ...Option) *Widget {
	t.Helper()
	opts = append([]Option{WithIDGenerator(sequentialIDs())}, opts...)
	w, err := New(NewRing(), opts...)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return w
}
