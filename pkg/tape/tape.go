// Package tape implements the unbounded, lazily-growing storage of a single-tape machine.
//
// Cells are addressed by a signed logical index. The backing buffer is contiguous
// and an offset maps logical indices to buffer positions, so growth on the left
// never shifts existing cells one by one.
package tape

import "strings"

// DefaultGrowChunk is the number of cells added per growth when no option is given.
const DefaultGrowChunk = 1

// Tape is a one-dimensional, two-way infinite sequence of symbols.
// A Tape is owned by a single run and is not safe for concurrent use.
type Tape struct {
	cells  []string
	offset int // backing position = logical index + offset
	empty  string
	chunk  int

	// lo..hi is the logical extent touched so far (initial cells included).
	// An empty tape starts at 0, so its first touch spans from 0 to the index.
	// It is what a tape growing one cell at a time would hold, and it is the
	// only extent Render looks at, so the chunk size never shows in output.
	lo, hi int
}

// Option configures a Tape.
type Option func(*Tape)

// WithGrowChunk sets how many cells are added when the tape grows.
// Values below 1 are ignored.
func WithGrowChunk(n int) Option {
	return func(t *Tape) {
		if n > 0 {
			t.chunk = n
		}
	}
}

// New creates a tape holding the initial symbols at logical indices 0..len-1.
// The initial slice is copied.
func New(initial []string, empty string, opts ...Option) *Tape {
	t := &Tape{
		cells: make([]string, len(initial)),
		empty: empty,
		chunk: DefaultGrowChunk,
		lo:    0,
		hi:    len(initial) - 1,
	}
	copy(t.cells, initial)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Empty returns the symbol used for unwritten cells.
func (t *Tape) Empty() string {
	return t.empty
}

// Get returns the symbol at the logical index, growing the tape if needed.
func (t *Tape) Get(index int) string {
	t.growIfNecessary(index)
	return t.cells[index+t.offset]
}

// Set overwrites the symbol at the logical index, growing the tape if needed.
func (t *Tape) Set(index int, symbol string) {
	t.growIfNecessary(index)
	t.cells[index+t.offset] = symbol
}

// Len returns the size of the backing buffer.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Offset returns the current logical-to-backing offset.
func (t *Tape) Offset() int {
	return t.offset
}

// Origin returns the leftmost logical index touched so far.
func (t *Tape) Origin() int {
	return t.lo
}

// Cells returns a copy of the touched extent, starting at Origin.
func (t *Tape) Cells() []string {
	if t.hi < t.lo {
		return []string{}
	}
	out := make([]string, t.hi-t.lo+1)
	copy(out, t.cells[t.lo+t.offset:t.hi+t.offset+1])
	return out
}

// growIfNecessary extends the touched extent to index and grows the buffer
// to cover all of it.
func (t *Tape) growIfNecessary(index int) {
	t.touch(index)
	if pos := t.lo + t.offset; pos < 0 {
		t.growLeft(-pos)
	}
	if pos := t.hi + t.offset; pos >= len(t.cells) {
		t.growRight(pos - len(t.cells) + 1)
	}
}

func (t *Tape) growLeft(need int) {
	n := t.roundUp(need)
	grown := make([]string, n+len(t.cells))
	for i := 0; i < n; i++ {
		grown[i] = t.empty
	}
	copy(grown[n:], t.cells)
	t.cells = grown
	t.offset += n
}

func (t *Tape) growRight(need int) {
	n := t.roundUp(need)
	for i := 0; i < n; i++ {
		t.cells = append(t.cells, t.empty)
	}
}

func (t *Tape) roundUp(need int) int {
	return ((need + t.chunk - 1) / t.chunk) * t.chunk
}

func (t *Tape) touch(index int) {
	if t.hi < t.lo {
		t.lo, t.hi = min(0, index), max(0, index)
		return
	}
	if index < t.lo {
		t.lo = index
	}
	if index > t.hi {
		t.hi = index
	}
}

// peek reads a cell without growing; cells outside the buffer read as empty.
func (t *Tape) peek(index int) string {
	pos := index + t.offset
	if pos < 0 || pos >= len(t.cells) {
		return t.empty
	}
	return t.cells[pos]
}

// Render returns a space-separated window of the tape with the highlighted
// cell wrapped in brackets. The window spans the non-empty content, always
// includes the highlight and shows one extra neighbor on each side unless the
// touched extent ends there. Every cell, including the last, is followed by a
// single space. Render never modifies the tape.
func (t *Tape) Render(highlight int) string {
	lo, hi := t.lo, t.hi
	if hi < lo {
		lo, hi = min(0, highlight), max(0, highlight)
	}
	if highlight < lo {
		lo = highlight
	}
	if highlight > hi {
		hi = highlight
	}
	n := hi - lo + 1
	h := highlight - lo

	left := 0
	for i := 0; i < n; i++ {
		if t.peek(lo+i) != t.empty {
			left = i
			break
		}
	}
	if h < left {
		left = h
	}
	if left >= 1 {
		left--
	}

	right := 0
	for i := n - 1; i >= 0; i-- {
		if t.peek(lo+i) != t.empty {
			right = i
			break
		}
	}
	if h > right {
		right = h
	}
	if right < n-1 {
		right++
	}

	var b strings.Builder
	for i := left; i <= right; i++ {
		sym := t.peek(lo + i)
		if i == h {
			b.WriteString("[" + sym + "]")
		} else {
			b.WriteString(sym)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
