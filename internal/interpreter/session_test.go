package interpreter

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func testRun(t *testing.T, instructions string) *Session {
	t.Helper()
	s := NewSession(Keys, Pos(4, 2))
	s.Run(instructions)
	return s
}

func TestRunSelectsKeys(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"S", "G"},
		{"L,S", "F"},
		{"L:3,S", "S"},
		{"R,S", "H"},
		{"R:3,S", "K"},
		{"U,S", "T"},
		{"D,S", "B"},
		{"S,_,S", "G G"},
		{"S,N,S", "G\nG"},
		{"S,Testing,Testing,Testing,S", "GG"},
		{"R,S,R:2,U,S", "HI"},
		{"R,S,U,L:3,S,D,R:6,S,S,U,S", "HELLO"},
		{"L:3,S,U,R:5,S,R:3,S,D:2,S", "SUP?"},
		{"R,S,L,U,S,S,R:5,S,_,U:1,L:6,S,R:6,S,L:6,S", "HTTP 404"},
	}
	for _, tt := range tests {
		if got := testRun(t, tt.input).Render(); got != tt.expected {
			t.Fatalf("Run(%q) want %q got %q", tt.input, tt.expected, got)
		}
	}
}

func TestRunWrapsAroundEdges(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"L:5,S", ";"},
		{"U:3,S", "B"},
		{"R:10,S", "G"},
		{"D:4,S", "G"},
		{"L:15,S", ";"},
		{"U:1000000000000,S", "G"},
		{"L:99999999999999999999999,S", "F"},
	}
	for _, tt := range tests {
		if got := testRun(t, tt.input).Render(); got != tt.expected {
			t.Fatalf("Run(%q) want %q got %q", tt.input, tt.expected, got)
		}
	}
}

func TestRunNeverFails(t *testing.T) {
	for _, input := range []string{"", ",", ",,,", "S,,S", "日本,S", "s,S:,L:"} {
		s := testRun(t, input)
		for _, r := range s.Render() {
			if r != 'G' && r != 'F' {
				t.Fatalf("Run(%q) emitted unexpected %q", input, s.Render())
			}
		}
	}
	if got := testRun(t, "S,,S").Render(); got != "GG" {
		t.Fatalf("want GG got %q", got)
	}
	if got := testRun(t, "s,S:,L:,S").Render(); got != "GF" {
		t.Fatalf("want GF got %q", got)
	}
}

func TestClearAndResetAreIndependent(t *testing.T) {
	start := Pos(4, 2)
	s := NewSession(Keys, start)

	s.Run("R,S,R:2,U,S")
	if s.String() != "HI" {
		t.Fatalf("want HI got %q", s)
	}
	s.ResetPosition(start)
	if s.Render() != "HI" {
		t.Fatalf("reset touched output: %q", s.Render())
	}
	s.Clear()
	if s.Render() != "" {
		t.Fatalf("want empty output got %q", s.Render())
	}
	if s.Position() != start {
		t.Fatalf("clear moved cursor to %v", s.Position())
	}

	s.Run("R,S,U,L:3,S,D,R:6,S,S,U,S")
	if s.Render() != "HELLO" {
		t.Fatalf("want HELLO got %q", s.Render())
	}
	s.Clear()
	s.Clear()
	if s.Render() != "" {
		t.Fatalf("want empty output got %q", s.Render())
	}
}

func TestResetPositionWraps(t *testing.T) {
	s := NewSession(Keys, Pos(-1, 5))
	if s.Position() != Pos(9, 1) {
		t.Fatalf("want (9,1) got %v", s.Position())
	}
	s.ResetPosition(Pos(23, -6))
	if s.Position() != Pos(3, 2) {
		t.Fatalf("want (3,2) got %v", s.Position())
	}
}

func TestApplyDoesNotMoveOnEmit(t *testing.T) {
	s := NewSession(Keys, Pos(4, 2))
	for _, op := range []Operation{{Kind: SelectCurrent}, {Kind: EmitSpace}, {Kind: EmitNewline}, {Kind: NoOp}} {
		s.Apply(op)
		if s.Position() != Pos(4, 2) {
			t.Fatalf("%v moved cursor to %v", op, s.Position())
		}
	}
	if s.Render() != "G \n" {
		t.Fatalf("want %q got %q", "G \n", s.Render())
	}
}

func TestSessionLogsSkippedTokens(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(Keys, Pos(4, 2))
	s.SetLogger(log.New(&buf, "", 0))
	s.Run("S,Testing,S")
	if s.Render() != "GG" {
		t.Fatalf("logging changed the result: %q", s.Render())
	}
	if !strings.Contains(buf.String(), `skipping token "Testing" at offset 2`) {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestSessionsShareGrid(t *testing.T) {
	a := NewSession(Keys, Pos(4, 2))
	b := NewSession(Keys, Pos(0, 0))
	a.Run("S")
	b.Run("S")
	if a.Render() != "G" || b.Render() != "1" {
		t.Fatalf("sessions interfered: %q %q", a, b)
	}
	if Keys.At(Pos(4, 2)) != 'G' {
		t.Fatal("grid was mutated")
	}
}
