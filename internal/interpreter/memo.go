package interpreter

// keyTable remembers where each character was found on a grid, misses
// included, so every distinct character is looked up once.
type keyTable struct {
	grid *Grid
	pos  map[rune]Position
	miss map[rune]bool
}

func newKeyTable(g *Grid) *keyTable {
	return &keyTable{grid: g, pos: make(map[rune]Position), miss: make(map[rune]bool)}
}

func (t *keyTable) Get(r rune) (Position, bool) {
	p, ok := t.pos[r]
	return p, ok
}

// Lookup resolves r, scanning the grid only the first time r is seen.
func (t *keyTable) Lookup(r rune) (Position, bool) {
	if p, ok := t.pos[r]; ok {
		return p, true
	}
	if t.miss[r] {
		return Position{}, false
	}
	p, ok := t.grid.Find(r)
	if ok {
		t.pos[r] = p
	} else {
		t.miss[r] = true
	}
	return p, ok
}
