package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSizeLimitedWriterTruncatesAtCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.log")
	w, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	defer w.Close()
	w.maxBytes = 64

	if _, err := w.Write(bytes.Repeat([]byte("a"), 60)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := w.Write(bytes.Repeat([]byte("b"), 10)); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) != 10 {
		t.Fatalf("expected truncation to second write only, got %d bytes", len(data))
	}
}
