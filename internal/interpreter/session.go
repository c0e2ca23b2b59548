package interpreter

import (
	"log"
	"strings"
)

// Session is a cursor over a Grid plus the keys it has emitted so far. A
// Session is not safe for concurrent use; the Grid may be shared.
type Session struct {
	grid *Grid
	pos  Position
	out  []rune
	log  *log.Logger
}

// NewSession starts a session at start (wrapped onto the grid) with an
// empty output buffer.
func NewSession(grid *Grid, start Position) *Session {
	return &Session{grid: grid, pos: grid.Wrap(start.X, start.Y)}
}

// SetLogger enables diagnostics for skipped tokens and characters. A nil
// logger turns them off.
func (s *Session) SetLogger(l *log.Logger) {
	s.log = l
}

func (s *Session) Grid() *Grid        { return s.grid }
func (s *Session) Position() Position { return s.pos }

// ResetPosition moves the cursor to p without touching the output.
func (s *Session) ResetPosition(p Position) {
	s.pos = s.grid.Wrap(p.X, p.Y)
}

// Clear empties the output buffer. The cursor stays where it is.
func (s *Session) Clear() {
	s.out = s.out[:0]
}

// Run interprets a comma-separated instruction string. Malformed tokens are
// skipped.
func (s *Session) Run(instructions string) {
	for _, st := range Parse(instructions) {
		s.Step(st)
	}
}

// Step applies one parsed step, logging it if it was not understood.
func (s *Session) Step(st Step) {
	if st.Op.Kind == NoOp {
		s.logf("skipping token %q at offset %d", st.Token, st.Offset)
	}
	s.Apply(st.Op)
}

// Apply executes a single operation.
func (s *Session) Apply(op Operation) {
	switch op.Kind {
	case MoveLeft:
		s.pos = s.grid.Move(s.pos, -op.Count, 0)
	case MoveRight:
		s.pos = s.grid.Move(s.pos, op.Count, 0)
	case MoveUp:
		s.pos = s.grid.Move(s.pos, 0, -op.Count)
	case MoveDown:
		s.pos = s.grid.Move(s.pos, 0, op.Count)
	case SelectCurrent:
		s.out = append(s.out, s.grid.At(s.pos))
	case EmitSpace:
		s.out = append(s.out, ' ')
	case EmitNewline:
		s.out = append(s.out, '\n')
	}
}

// Render returns the emitted keys in order.
func (s *Session) Render() string {
	return string(s.out)
}

func (s *Session) String() string {
	return s.Render()
}

// Synthesize returns instructions that type text starting from the current
// cursor position. The session itself is not modified.
func (s *Session) Synthesize(text string) string {
	return strings.Join(tokens(plan(s.grid, s.pos, text, s.logf)), ",")
}

func (s *Session) logf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Printf(format, args...)
	}
}
