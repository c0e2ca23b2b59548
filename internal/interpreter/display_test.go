package interpreter

import (
	"bytes"
	"strings"
	"testing"
)

func TestBoardRender(t *testing.T) {
	g := MustGrid([]string{"AB", "CD"})
	got := PlainBoard().Render(g, Pos(1, 0))
	want := " A [B]\n C  D "
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestBoardRenderWideKeys(t *testing.T) {
	g := MustGrid([]string{"日A"})
	got := PlainBoard().Render(g, Pos(1, 0))
	want := " 日 [A ]"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestBoardDisplay(t *testing.T) {
	s := NewSession(Keys, Pos(4, 2))
	s.Run("R,S")
	var buf bytes.Buffer
	PlainBoard().Display(&buf, s)
	out := buf.String()
	if !strings.HasPrefix(out, `Cursor (5,2) output "H"`) {
		t.Fatalf("unexpected header in %q", out)
	}
	if !strings.Contains(out, " G [H] J ") {
		t.Fatalf("cursor not drawn in %q", out)
	}
	if n := strings.Count(out, "\n"); n != 5 {
		t.Fatalf("want 5 lines got %d", n)
	}
}
