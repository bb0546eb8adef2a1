// Package layout computes per-pane column widths from the total terminal
// width. Flexible panes declare a minimum, an optional cap, and a preferred
// fraction of the space left after fixed panes; one flexible pane absorbs
// rounding so the widths always sum to the terminal width.
package layout

import "math"

// Pane declares sizing for one column.
type Pane struct {
	Name     string
	Fixed    int     // >0 makes this a fixed-width pane; flexible fields ignored
	Min      int     // minimum width for a flexible pane
	Max      int     // cap for a flexible pane, 0 = unbounded
	Frac     float64 // preferred share of the remaining width
	Overflow bool    // absorbs leftover/rounding remainder
}

// Engine allocates widths for an ordered pane list and caches the result
// per observed terminal width.
type Engine struct {
	panes        []Pane
	fixedPresent bool
	cache        map[int][]int
}

// NewEngine builds an engine over the given panes. Fixed panes start
// present.
func NewEngine(panes ...Pane) *Engine {
	return &Engine{
		panes:        panes,
		fixedPresent: true,
		cache:        make(map[int][]int),
	}
}

// SetFixedPresent toggles all fixed panes on or off as a group (the logs
// column disappears entirely when no logs exist). Invalidates the cache.
func (e *Engine) SetFixedPresent(present bool) {
	if e.fixedPresent == present {
		return
	}
	e.fixedPresent = present
	e.cache = make(map[int][]int)
}

// FixedPresent reports whether the fixed panes are shown.
func (e *Engine) FixedPresent() bool {
	return e.fixedPresent
}

// Calculate returns one width per pane, in declaration order, summing
// exactly to total. Hidden fixed panes get width zero. Results are cached
// by total width; an unchanged terminal costs a map lookup.
func (e *Engine) Calculate(total int) []int {
	if cached, ok := e.cache[total]; ok {
		out := make([]int, len(cached))
		copy(out, cached)
		return out
	}

	widths := e.allocate(total)
	stored := make([]int, len(widths))
	copy(stored, widths)
	e.cache[total] = stored
	return widths
}

func (e *Engine) allocate(total int) []int {
	widths := make([]int, len(e.panes))
	if total <= 0 {
		return widths
	}

	remaining := total
	for i, p := range e.panes {
		if p.Fixed > 0 && e.fixedPresent {
			widths[i] = p.Fixed
			remaining -= p.Fixed
		}
	}
	if remaining < 0 {
		// Fixed panes alone exceed the terminal; shrink them left to right.
		over := -remaining
		for i := len(e.panes) - 1; i >= 0 && over > 0; i-- {
			if widths[i] == 0 {
				continue
			}
			cut := widths[i]
			if cut > over {
				cut = over
			}
			widths[i] -= cut
			over -= cut
		}
		remaining = 0
	}

	flex := e.flexIndices()
	if len(flex) == 0 {
		return widths
	}

	// Preferred allocation: fraction of the remaining space, floored at the
	// minimum and capped at any declared maximum.
	sum := 0
	for _, i := range flex {
		p := e.panes[i]
		w := int(math.Round(float64(remaining) * p.Frac))
		if w < p.Min {
			w = p.Min
		}
		if p.Max > 0 && w > p.Max {
			w = p.Max
		}
		widths[i] = w
		sum += w
	}

	if sum > remaining {
		e.shrink(widths, flex, remaining)
		sum = 0
		for _, i := range flex {
			sum += widths[i]
		}
	}

	// Hand the leftover to the overflow pane so columns fill the terminal.
	if leftover := remaining - sum; leftover != 0 {
		oi := flex[len(flex)-1]
		for _, i := range flex {
			if e.panes[i].Overflow {
				oi = i
				break
			}
		}
		widths[oi] += leftover
		if widths[oi] < 0 {
			widths[oi] = 0
		}
	}
	return widths
}

// shrink reduces flexible allocations to fit the remaining width:
// proportionally down to each minimum first, then the widest pane absorbs
// whatever deficit is left.
func (e *Engine) shrink(widths []int, flex []int, remaining int) {
	sumMin, sumAlloc := 0, 0
	for _, i := range flex {
		sumMin += e.panes[i].Min
		sumAlloc += widths[i]
	}

	if sumMin <= remaining {
		spread := sumAlloc - sumMin
		budget := remaining - sumMin
		for _, i := range flex {
			extra := widths[i] - e.panes[i].Min
			scaled := 0
			if spread > 0 {
				scaled = extra * budget / spread
			}
			widths[i] = e.panes[i].Min + scaled
		}
		return
	}

	// Minimums alone do not fit: drop everyone to minimum, then keep taking
	// from the widest (least constrained) pane.
	for _, i := range flex {
		widths[i] = e.panes[i].Min
	}
	deficit := sumMin - remaining
	for deficit > 0 {
		wi := flex[0]
		for _, i := range flex {
			if widths[i] > widths[wi] {
				wi = i
			}
		}
		if widths[wi] <= 0 {
			break
		}
		widths[wi]--
		deficit--
	}
}

func (e *Engine) flexIndices() []int {
	var out []int
	for i, p := range e.panes {
		if p.Fixed == 0 {
			out = append(out, i)
		}
	}
	return out
}
