package textwidth

import (
	"strings"
	"testing"
)

func TestMeasure(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"日本語", 6},
		{"a日b", 4},
		{"café", 4},
	}
	for _, c := range cases {
		if got := Measure(c.text); got != c.want {
			t.Errorf("Measure(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestWrapLinesFitWidth(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"日本語のテキストを折り返すテストです",
		"mixed 日本語 and ascii words in one line",
		"short",
	}
	for _, text := range texts {
		for _, width := range []int{5, 8, 10, 20, 40} {
			for _, line := range Wrap(text, width) {
				if Measure(line) > width {
					t.Errorf("Wrap(%q, %d): line %q is %d columns", text, width, line, Measure(line))
				}
			}
		}
	}
}

func TestWrapPreservesWords(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	got := strings.Fields(strings.Join(Wrap(text, 11), " "))
	want := strings.Fields(text)
	if len(got) != len(want) {
		t.Fatalf("word count changed: %v vs %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("word %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrapLongToken(t *testing.T) {
	lines := Wrap("supercalifragilisticexpialidocious", 10)
	if len(lines) < 2 {
		t.Fatalf("expected multiple chunks, got %v", lines)
	}
	for _, line := range lines {
		if Measure(line) > 10 {
			t.Errorf("chunk %q exceeds width", line)
		}
	}
	if strings.Join(lines, "") != "supercalifragilisticexpialidocious" {
		t.Errorf("characters lost: %v", lines)
	}
}

func TestWrapDegenerate(t *testing.T) {
	if got := Wrap("anything at all", 0); len(got) != 1 || got[0] != "anything at all" {
		t.Errorf("width 0 should return text unchanged, got %v", got)
	}
	if got := Wrap("", 10); len(got) != 1 || got[0] != "" {
		t.Errorf("empty text should return one empty line, got %v", got)
	}
	if got := Wrap("   ", 10); len(got) != 1 || got[0] != "" {
		t.Errorf("whitespace-only text should return one empty line, got %v", got)
	}
}

func TestWrapIdempotent(t *testing.T) {
	text := "an example sentence to be wrapped more than once deterministically"
	first := Wrap(text, 12)
	second := Wrap(text, 12)
	if len(first) != len(second) {
		t.Fatalf("non-deterministic line count")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10, "..."); got != "short" {
		t.Errorf("fitting text should be unchanged, got %q", got)
	}
	got := Truncate("a very long subject line", 10, "...")
	if Measure(got) > 10 {
		t.Errorf("truncated text too wide: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestTruncateTinyWidth(t *testing.T) {
	if got := Truncate("abcdef", 2, "..."); got != ".." {
		t.Errorf("want ellipsis prefix %q, got %q", "..", got)
	}
	if got := Truncate("abcdef", 0, "..."); got != "" {
		t.Errorf("want empty result for width 0, got %q", got)
	}
}

func TestTruncateWideRunes(t *testing.T) {
	got := Truncate("日本語テキスト", 7, "...")
	if Measure(got) > 7 {
		t.Errorf("truncated text is %d columns: %q", Measure(got), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
