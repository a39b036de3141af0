package report

import (
	"bytes"
	"errors"
	"testing"

	"paritybalance/internal/balance"

	"github.com/goccy/go-json"
)

func TestWriteText(t *testing.T) {
	tests := []struct {
		name   string
		result int64
		want   string
	}{
		{"zero", 0, "0\n"},
		{"positive", 5, "5\n"},
		{"negative sum", -10, "-10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, Report{Result: tt.result}, FormatText); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("Write() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	res, err := balance.Solve(balance.Sequence{1, 3, 5, 7, 2}, balance.ModeCount)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, FromResult(res), FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.Bytes()
	if len(out) == 0 || out[len(out)-1] != '\n' || bytes.Count(out, []byte("\n")) != 1 {
		t.Fatalf("Write() did not produce a single line: %q", out)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	want := map[string]any{"n": 5.0, "even": 1.0, "odd": 4.0, "mode": "count", "result": 2.0}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("field %q = %v, want %v (full: %s)", k, got[k], v, out)
		}
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWritePropagatesWriterError(t *testing.T) {
	boom := errors.New("closed pipe")
	if err := Write(failingWriter{err: boom}, Report{}, FormatText); !errors.Is(err, boom) {
		t.Fatalf("Write() error = %v, want %v", err, boom)
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": FormatText, "text": FormatText, "json": FormatJSON} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) expected error")
	}
	if err := Write(&bytes.Buffer{}, Report{}, Format("xml")); err == nil {
		t.Fatalf("Write(xml) expected error")
	}
}
