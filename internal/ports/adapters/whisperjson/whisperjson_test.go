package whisperjson

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	raw := `{
		"segments": [
			{"start": 0, "end": 4.5, "text": " Hello there. ", "words": [
				{"start": 0, "end": 0.8, "word": " Hello"},
				{"start": 0.9, "end": 1.4, "word": " there."}
			]},
			{"start": 4.5, "end": 9, "text": "Second segment."}
		]
	}`
	path := filepath.Join(t.TempDir(), "transcript.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tr, err := New().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(tr.Segments))
	}
	if tr.Segments[0].Text != "Hello there." {
		t.Fatalf("segment text not trimmed: %q", tr.Segments[0].Text)
	}
	if tr.Segments[0].Words[0].Word != "Hello" {
		t.Fatalf("word text not trimmed: %q", tr.Segments[0].Words[0].Word)
	}
	if tr.Segments[1].End != 9 {
		t.Fatalf("unexpected end: %v", tr.Segments[1].End)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := New().Load(context.Background(), path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Load(ctx, "whatever.json"); err == nil {
		t.Fatalf("expected context error")
	}
}
