package views

import (
	"strings"
	"testing"
	"time"

	"triptych/internal/item"
)

func testMessages(n int) []item.Message {
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := make([]item.Message, n)
	for i := range out {
		role := item.RoleUser
		if i%2 == 1 {
			role = item.RoleAssistant
		}
		out[i] = item.Message{
			Role:    role,
			Content: "short message",
			Time:    base.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestMessagesTailAnchored(t *testing.T) {
	m := NewMessages(true, testDateFormat)
	m.SetMessages(testMessages(20))
	got := texts(m.Render(40, 10))

	if m.Cursor() != 19 {
		t.Fatalf("cursor = %d, want 19", m.Cursor())
	}
	if got[len(got)-1] != "(20/20)" {
		t.Fatalf("footer = %q", got[len(got)-1])
	}
	found := false
	for _, l := range got {
		if strings.HasPrefix(l, "▶ ") {
			found = true
		}
	}
	if !found {
		t.Fatalf("cursor header missing: %v", got)
	}
}

func TestMessagesHeaderFormat(t *testing.T) {
	m := NewMessages(true, testDateFormat)
	m.SetMessages(testMessages(2))
	m.JumpStart()
	got := texts(m.Render(40, 10))

	if got[0] != "▶ [ ] User 01-15 10:00:" {
		t.Fatalf("header = %q", got[0])
	}
	if !strings.HasPrefix(got[1], "    short message") {
		t.Fatalf("content = %q", got[1])
	}
}

func TestMessagesToggleMarksRow(t *testing.T) {
	m := NewMessages(true, testDateFormat)
	m.SetMessages(testMessages(3))
	m.JumpStart()
	m.Toggle()
	got := texts(m.Render(40, 12))

	if !strings.Contains(got[0], "[x]") {
		t.Fatalf("toggled header = %q", got[0])
	}
}

func TestMessagesVisualBanner(t *testing.T) {
	m := NewMessages(true, testDateFormat)
	m.SetMessages(testMessages(5))
	m.ToggleVisual()
	got := texts(m.Render(40, 10))

	if got[len(got)-1] != "-- VISUAL --" {
		t.Fatalf("banner row = %q", got[len(got)-1])
	}

	m.CancelVisual()
	got = texts(m.Render(40, 10))
	if got[len(got)-1] != "(5/5)" {
		t.Fatalf("footer after cancel = %q", got[len(got)-1])
	}
	if len(m.SelectedIndices()) != 0 {
		t.Fatal("cancel must not commit the range")
	}
}

func TestMessagesLongContentWraps(t *testing.T) {
	m := NewMessages(false, testDateFormat)
	m.SetMessages([]item.Message{{
		Role:    item.RoleAssistant,
		Content: strings.Repeat("wrap me please ", 10),
		Time:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}})
	got := texts(m.Render(30, 20))

	content := 0
	for _, l := range got {
		if strings.HasPrefix(l, "    ") && strings.TrimSpace(l) != "" {
			content++
		}
	}
	if content < 2 {
		t.Fatalf("long message should span lines: %v", got)
	}
}

func TestMessagesNarrowKeepsMinimumContentWidth(t *testing.T) {
	m := NewMessages(false, testDateFormat)
	m.SetMessages([]item.Message{{
		Role:    item.RoleUser,
		Content: "abcdefghij",
		Time:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}})
	got := texts(m.Render(8, 10))

	found := false
	for _, l := range got {
		if strings.Contains(l, "abcdefghij") {
			found = true
		}
	}
	if !found {
		t.Fatalf("ten columns must stay available to content: %v", got)
	}
}

func TestMessagesSelectedReturnsInOrder(t *testing.T) {
	m := NewMessages(true, testDateFormat)
	m.SetMessages(testMessages(6))
	m.JumpStart()
	m.MoveCursor(4)
	m.Toggle()
	m.JumpStart()
	m.Toggle()

	sel := m.Selected()
	if len(sel) != 2 || !sel[0].Time.Before(sel[1].Time) {
		t.Fatalf("selected out of order: %v", sel)
	}
}
