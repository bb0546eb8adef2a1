package views

import (
	"strings"
	"testing"
	"time"

	"triptych/internal/item"
	"triptych/internal/render"

	"github.com/google/uuid"
)

func TestDetailsScrollClamps(t *testing.T) {
	d := NewDetails()
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	d.SetDetails(lines)

	d.Render(40, 10)
	d.ScrollDown(100, 10)
	got := d.Render(40, 10)
	if len(got) != 10 {
		t.Fatalf("rendered %d lines", len(got))
	}

	d.ScrollUp(100)
	got = d.Render(40, 10)
	if len(got) != 10 {
		t.Fatalf("rendered %d lines after scroll up", len(got))
	}
}

func TestDetailsKeepsDiffStatRuns(t *testing.T) {
	d := NewDetails()
	d.SetDetails([]string{" a/very/long/path/to/some/file.go | 120 ++++++++++----"})
	got := d.Render(20, 5)

	if len(got) != 1 {
		t.Fatalf("diff-stat row must clip, not wrap: %d lines", len(got))
	}
	if got[0].Runs[0].Color != render.ColorBlue {
		t.Fatalf("path run color = %v", got[0].Runs[0].Color)
	}
}

func TestDetailsWrapsProse(t *testing.T) {
	d := NewDetails()
	d.SetDetails([]string{"    " + strings.Repeat("word ", 20)})
	got := d.Render(25, 20)

	if len(got) < 2 {
		t.Fatalf("long prose should wrap: %v", texts(got))
	}
}

func TestDetailsHeaderColorsSurviveWrap(t *testing.T) {
	d := NewDetails()
	d.SetDetails([]string{"Author: Someone With A Very Long Name <someone@example.com>"})
	got := d.Render(20, 10)

	for _, l := range got {
		if l.Runs[0].Color != render.ColorCyan {
			t.Fatalf("continuation lost author color: %v", l)
		}
	}
}

func TestLogsTwoLineEntries(t *testing.T) {
	entries := []item.LogEntry{
		{ID: uuid.Nil, URI: "/tmp/session-0.jsonl", Provider: "claude",
			Modified: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)},
		{ID: uuid.Nil, URI: "/tmp/session-1.jsonl", Provider: "codex",
			Modified: time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)},
	}
	l := NewLogs(entries, testDateFormat)
	got := texts(l.Render(16, 8))

	if !strings.HasPrefix(got[0], "▶ claude") {
		t.Fatalf("head line = %q", got[0])
	}
	if !strings.HasPrefix(got[1], "    session-0") {
		t.Fatalf("name line = %q", got[1])
	}
	if got[len(got)-1] != "(1/2)" {
		t.Fatalf("footer = %q", got[len(got)-1])
	}
}

func TestLogsCursorMoves(t *testing.T) {
	entries := []item.LogEntry{
		{URI: "a.jsonl", Provider: "claude"},
		{URI: "b.jsonl", Provider: "codex"},
	}
	l := NewLogs(entries, testDateFormat)
	l.MoveCursor(1)
	cur, ok := l.Current()
	if !ok || cur.URI != "b.jsonl" {
		t.Fatalf("current = %v ok=%v", cur, ok)
	}
	got := texts(l.Render(16, 8))
	if got[len(got)-1] != "(2/2)" {
		t.Fatalf("footer = %q", got[len(got)-1])
	}
}

func TestChatEmpty(t *testing.T) {
	c := NewChat(testDateFormat)
	if !c.Empty() {
		t.Fatal("fresh chat should be empty")
	}
	got := texts(c.Render(30, 10))
	if len(got) != 1 || !strings.Contains(got[0], "No chat") {
		t.Fatalf("empty chat = %v", got)
	}
	c.SetMessages(testMessages(2))
	if c.Empty() {
		t.Fatal("chat with a transcript is not empty")
	}
	c.SetMessages(nil)
	if !c.Empty() {
		t.Fatal("clearing the transcript should empty the chat")
	}
}

func TestChatTranscriptScrolls(t *testing.T) {
	c := NewChat(testDateFormat)
	c.SetMessages(testMessages(10))
	first := texts(c.Render(40, 6))
	c.ScrollDown(3, 6)
	second := texts(c.Render(40, 6))

	if len(first) != 6 || len(second) != 6 {
		t.Fatalf("pane heights: %d then %d", len(first), len(second))
	}
	if first[0] == second[0] {
		t.Fatal("scroll had no effect")
	}
}
