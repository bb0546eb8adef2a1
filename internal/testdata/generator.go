// Package testdata generates deterministic synthetic commits, messages,
// and session logs. It backs demo mode and the app-level tests, standing
// in for real repository and chat-store sources.
package testdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"triptych/internal/item"
)

var authors = []string{"ada", "grace", "edsger", "barbara", "tony"}

var subjects = []string{
	"Fix off-by-one in viewport backward search",
	"Add session log discovery for the codex provider",
	"Refactor pane drawing into a cell buffer",
	"Cache layout widths per terminal size",
	"Handle double-width runes at the pane edge",
	"Wire visual mode into the commit column",
	"Truncate long author names in narrow panes",
	"Support NO_COLOR in the renderer",
}

var replies = []string{
	"Looking at the viewport code now.",
	"The backward search needs to stop one item early, otherwise the cursor row scrolls out.",
	"Fixed, added a regression test with variable heights.",
	"Can you also check the oversized-item case?",
	"Done. An item taller than the pane is now shown alone from its first line.",
}

// Generator produces repeatable data from a seed and implements every
// source interface the browser consumes.
type Generator struct {
	commits []item.Commit
	logs    []item.LogEntry
	msgs    map[uuid.UUID][]item.Message
	notes   map[string][]item.Message
}

// New builds a generator with n commits. The same seed yields the same
// data, byte for byte.
func New(seed int64, n int) *Generator {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	g := &Generator{
		msgs:  make(map[uuid.UUID][]item.Message),
		notes: make(map[string][]item.Message),
	}

	for i := 0; i < n; i++ {
		full := fmt.Sprintf("%040x", rng.Int63())
		c := item.Commit{
			SHA:     full[:8],
			FullSHA: full,
			Subject: subjects[rng.Intn(len(subjects))],
			Author:  authors[rng.Intn(len(authors))],
			Time:    base.Add(-time.Duration(i) * 7 * time.Hour),
			HasNote: rng.Intn(3) == 0,
		}
		g.commits = append(g.commits, c)
		if c.HasNote {
			g.notes[c.FullSHA] = g.conversation(rng, c.Time)
		}
	}

	for i := 0; i < 4; i++ {
		id := uuid.Must(uuid.NewRandomFromReader(rng))
		e := item.LogEntry{
			ID:       id,
			URI:      fmt.Sprintf("~/.local/share/chat/session-%d.jsonl", i),
			Provider: []string{"claude", "codex"}[i%2],
			Modified: base.Add(-time.Duration(i) * 26 * time.Hour),
		}
		g.logs = append(g.logs, e)
		g.msgs[id] = g.conversation(rng, e.Modified)
	}
	return g
}

func (g *Generator) conversation(rng *rand.Rand, at time.Time) []item.Message {
	id := uuid.Must(uuid.NewRandomFromReader(rng))
	n := 3 + rng.Intn(len(replies)-2)
	out := make([]item.Message, 0, n)
	for i := 0; i < n; i++ {
		role := item.RoleUser
		if i%2 == 1 {
			role = item.RoleAssistant
		}
		out = append(out, item.Message{
			Role:      role,
			Content:   replies[i%len(replies)],
			Time:      at.Add(time.Duration(i) * time.Minute),
			SessionID: id,
		})
	}
	return out
}

// Commits returns up to limit commits, newest first. limit <= 0 means all.
func (g *Generator) Commits(limit int) ([]item.Commit, error) {
	if limit <= 0 || limit > len(g.commits) {
		limit = len(g.commits)
	}
	return g.commits[:limit], nil
}

// Logs returns the synthetic session logs.
func (g *Generator) Logs() ([]item.LogEntry, error) {
	return g.logs, nil
}

// Messages returns the conversation for one session log.
func (g *Generator) Messages(id uuid.UUID) ([]item.Message, error) {
	msgs, ok := g.msgs[id]
	if !ok {
		return nil, fmt.Errorf("unknown session %s", id)
	}
	return msgs, nil
}

// Note returns the transcript attached to a commit, or nil.
func (g *Generator) Note(fullSHA string) ([]item.Message, error) {
	return g.notes[fullSHA], nil
}

// Details fabricates git-show-shaped detail lines for a commit.
func (g *Generator) Details(fullSHA string) ([]string, error) {
	for _, c := range g.commits {
		if c.FullSHA != fullSHA {
			continue
		}
		lines := []string{
			"commit " + c.FullSHA,
			"Author: " + c.Author + " <" + c.Author + "@example.com>",
			"Date:   " + c.Time.Format("Mon Jan 2 15:04:05 2006"),
			"",
			"    " + c.Subject,
			"",
			" internal/viewport/viewport.go      | 24 ++++++++-----",
			" internal/viewport/viewport_test.go | 61 +++++++++++++++++++++",
			" 2 files changed, 80 insertions(+), 5 deletions(-)",
		}
		return lines, nil
	}
	return nil, fmt.Errorf("unknown commit %s", shorten(fullSHA))
}

func shorten(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
