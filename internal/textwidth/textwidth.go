// Package textwidth measures and reflows text by terminal display width
// rather than byte or rune count.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measure returns the number of terminal columns text occupies. Unprintable
// sequences count as zero columns, never negative.
func Measure(text string) int {
	if text == "" {
		return 0
	}
	w := runewidth.StringWidth(text)
	if w < 0 {
		return 0
	}
	return w
}

// Wrap word-wraps text to the given display width. Whitespace is the
// preferred break point; a token wider than the width is hard-split at
// grapheme boundaries so no line exceeds the width. A non-positive width
// returns the text unchanged as a single line.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	if text == "" {
		return []string{""}
	}
	if Measure(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 { // all whitespace
		return []string{""}
	}

	var lines []string
	var line string
	lineW := 0

	for _, word := range words {
		ww := Measure(word)
		if line != "" && lineW+1+ww <= width {
			line += " " + word
			lineW += 1 + ww
			continue
		}
		if line == "" && ww <= width {
			line = word
			lineW = ww
			continue
		}

		if line != "" {
			lines = append(lines, line)
			line, lineW = "", 0
		}

		// Token wider than the line: hard-split into width-sized chunks.
		parts := breakToken(word, width)
		for _, part := range parts[:len(parts)-1] {
			lines = append(lines, part)
		}
		last := parts[len(parts)-1]
		line, lineW = last, Measure(last)
	}

	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

// Truncate shortens text to fit width columns, appending ellipsis when
// anything was cut. If even the ellipsis does not fit, the widest prefix of
// the ellipsis that does (possibly empty) is returned.
func Truncate(text string, width int, ellipsis string) string {
	if width <= 0 {
		return ""
	}
	if Measure(text) <= width {
		return text
	}
	ellW := Measure(ellipsis)
	if width <= ellW {
		return widthPrefix(ellipsis, width)
	}
	return widthPrefix(text, width-ellW) + ellipsis
}

// breakToken splits a single token into chunks each at most width columns,
// never splitting inside a grapheme cluster. Always returns at least one
// element.
func breakToken(token string, width int) []string {
	var parts []string
	var buf strings.Builder
	acc := 0

	g := uniseg.NewGraphemes(token)
	for g.Next() {
		cluster := g.Str()
		w := Measure(cluster)
		if acc+w > width && buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
			acc = 0
		}
		buf.WriteString(cluster)
		acc += w
	}
	parts = append(parts, buf.String())
	return parts
}

// widthPrefix returns the longest prefix of text no wider than width columns.
func widthPrefix(text string, width int) string {
	var buf strings.Builder
	acc := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := Measure(g.Str())
		if acc+w > width {
			break
		}
		acc += w
		buf.WriteString(g.Str())
	}
	return buf.String()
}
