package trace

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestBegin_NilLogger(t *testing.T) {
	ctx := t.Context()

	op := Begin(ctx, nil, "test.op")

	if op != nil {
		t.Fatal("Begin should return nil when logger is nil")
	}

	op.End(nil)
}

func TestEnd_NilOp(t *testing.T) {
	var op *Op
	op.End(nil)
}

func TestBeginEnd_EnabledLogger(t *testing.T) {
	h := newRecordHandler(slog.LevelDebug)
	logger := slog.New(h)
	ctx := t.Context()

	op := Begin(ctx, logger, "graphiso.test.op", slog.String("source", "/test/path"))
	// Set startTime to 25ms ago for deterministic duration testing (avoids time.Sleep).
	op.startTime = time.Now().Add(-25 * time.Millisecond)
	op.End(nil, slog.Int("result_count", 5))

	records := h.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records (start + end), got %d", len(records))
	}

	start := records[0]
	if start.Message != "operation started" {
		t.Errorf("start message: got %q, want %q", start.Message, "operation started")
	}
	assertAttr(t, start, "op", "graphiso.test.op")
	assertAttr(t, start, "source", "/test/path")

	end := records[1]
	if end.Message != "operation ended" {
		t.Errorf("end message: got %q, want %q", end.Message, "operation ended")
	}
	assertAttr(t, end, "op", "graphiso.test.op")
	assertAttr(t, end, "result_count", int64(5))

	assertHasAttr(t, end, "duration")
}

func TestEnd_WithError(t *testing.T) {
	h := newRecordHandler(slog.LevelDebug)
	logger := slog.New(h)
	ctx := t.Context()

	op := Begin(ctx, logger, "test.op")
	op.End(errors.New("something failed"))

	records := h.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	assertAttr(t, records[1], "error", "something failed")
}

func TestEnd_NoError(t *testing.T) {
	h := newRecordHandler(slog.LevelDebug)
	logger := slog.New(h)
	ctx := t.Context()

	op := Begin(ctx, logger, "test.op")
	op.End(nil)

	records := h.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	assertNoAttr(t, records[1], "error")
}

func TestEnd_DoubleCalling(t *testing.T) {
	h := newRecordHandler(slog.LevelDebug)
	logger := slog.New(h)
	ctx := t.Context()

	op := Begin(ctx, logger, "test.op")
	op.End(nil)
	op.End(nil)
	op.End(nil)

	records := h.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records (double calls ignored), got %d", len(records))
	}
}

func TestBeginEnd_DisabledLevel(t *testing.T) {
	h := newRecordHandler(slog.LevelInfo)
	logger := slog.New(h)
	ctx := t.Context()

	op := Begin(ctx, logger, "test.op")

	if op != nil {
		t.Fatal("Begin should return nil when level is disabled")
	}

	op.End(nil)

	if records := h.Records(); len(records) != 0 {
		t.Fatalf("expected 0 records when level disabled, got %d", len(records))
	}
}

// Helper functions

func assertAttr(t *testing.T, r slog.Record, key string, wantValue any) {
	t.Helper()
	var found bool
	var gotValue any
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = true
			switch v := wantValue.(type) {
			case string:
				gotValue = a.Value.String()
			case int64:
				gotValue = a.Value.Int64()
			case int:
				gotValue = a.Value.Int64()
			default:
				t.Fatalf("unsupported type for assertion: %T", v)
			}
			return false
		}
		return true
	})
	if !found {
		t.Errorf("expected attribute %q to be present", key)
		return
	}
	switch w := wantValue.(type) {
	case int:
		if gotValue != int64(w) {
			t.Errorf("attribute %q: got %v, want %v", key, gotValue, wantValue)
		}
	default:
		if gotValue != wantValue {
			t.Errorf("attribute %q: got %v, want %v", key, gotValue, wantValue)
		}
	}
}

func assertHasAttr(t *testing.T, r slog.Record, key string) {
	t.Helper()
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = true
			return false
		}
		return true
	})
	if !found {
		t.Errorf("expected attribute %q to be present", key)
	}
}

func assertNoAttr(t *testing.T, r slog.Record, key string) {
	t.Helper()
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = true
			return false
		}
		return true
	})
	if found {
		t.Errorf("expected attribute %q to NOT be present", key)
	}
}
