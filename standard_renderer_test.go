package tea

import (
	"bytes"
	"strings"
	"testing"
)

func TestStandardRendererFlushSkipsUnchangedFrame(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, false, 60)

	r.Write("hello")
	if err := r.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected output on first flush")
	}

	buf.Reset()
	r.Write("hello")
	if err := r.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for an unchanged frame, got %q", buf.String())
	}
}

func TestStandardRendererFlushEmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, false, 60)

	if err := r.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for an empty frame, got %q", buf.String())
	}
}

func TestStandardRendererAltScreenToggle(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, false, 60)

	if r.AltScreen() {
		t.Fatal("expected alt screen to start disabled")
	}
	r.EnterAltScreen()
	if !r.AltScreen() {
		t.Fatal("expected alt screen to be active")
	}
	r.ExitAltScreen()
	if r.AltScreen() {
		t.Fatal("expected alt screen to be inactive")
	}
}

func TestStandardRendererCursorVisibility(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, false, 60)

	if !r.CursorVisibility() {
		t.Fatal("expected cursor to start visible")
	}
	r.HideCursor()
	if r.CursorVisibility() {
		t.Fatal("expected cursor to be hidden")
	}
	r.ShowCursor()
	if !r.CursorVisibility() {
		t.Fatal("expected cursor to be visible again")
	}
}

func TestStandardRendererResizeTruncatesFrame(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, false, 60)
	r.Resize(80, 2)

	r.Write("one\ntwo\nthree")
	if err := r.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "one") {
		t.Fatalf("expected the oldest line to be dropped once height is exceeded, got %q", out)
	}
}

func TestStandardRendererWriteEmptyStringSubstitutesSpace(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, false, 60)
	r.Write("")
	if r.buf.String() != " " {
		t.Fatalf("expected a single space, got %q", r.buf.String())
	}
}
