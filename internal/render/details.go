package render

import "strings"

// ColorizeDetails applies commit-detail coloring line by line: the commit
// header green, author cyan, date yellow, refs magenta, and diff-stat rows
// with a blue path and green/red change histogram. Unrecognized lines pass
// through uncolored.
func ColorizeDetails(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, s := range lines {
		out[i] = colorizeDetailLine(s)
	}
	return out
}

func colorizeDetailLine(s string) Line {
	switch {
	case strings.HasPrefix(s, "commit "):
		return Colored(Run{Text: s, Color: ColorGreen})
	case strings.HasPrefix(s, "Author:"):
		return Colored(Run{Text: s, Color: ColorCyan})
	case strings.HasPrefix(s, "Date:"):
		return Colored(Run{Text: s, Color: ColorYellow})
	case strings.HasPrefix(s, "Refs:"):
		return Colored(Run{Text: s, Color: ColorMagenta})
	}
	if runs, ok := diffStatRuns(s); ok {
		return Line{Runs: runs}
	}
	return Plain(s)
}

// diffStatRuns splits a `path | count histogram` row into colored runs.
// The histogram is grouped into maximal '+' and '-' spans so adjacent
// marks share one run.
func diffStatRuns(s string) ([]Run, bool) {
	bar := strings.Index(s, " | ")
	if bar < 0 {
		return nil, false
	}
	rest := s[bar+3:]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, false
	}
	if !isChangeCount(fields[0]) {
		return nil, false
	}

	runs := []Run{{Text: s[:bar], Color: ColorBlue}}
	cur := Run{Text: " | "}
	for _, r := range rest {
		c := ColorDefault
		switch r {
		case '+':
			c = ColorGreen
		case '-':
			c = ColorRed
		}
		if c != cur.Color && cur.Text != "" {
			runs = append(runs, cur)
			cur = Run{Color: c}
		}
		cur.Color = c
		cur.Text += string(r)
	}
	if cur.Text != "" {
		runs = append(runs, cur)
	}
	return runs, true
}

// isChangeCount accepts a decimal change count or git's "Bin" marker for
// binary files.
func isChangeCount(s string) bool {
	if s == "Bin" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
