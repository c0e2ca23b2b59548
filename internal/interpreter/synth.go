package interpreter

import "strings"

// Synthesize returns an instruction string that types text on g when run
// from start. Characters that are not on the grid are dropped.
func Synthesize(g *Grid, start Position, text string) string {
	return strings.Join(tokens(Plan(g, start, text)), ",")
}

// Plan is Synthesize before the operations are joined into a string.
func Plan(g *Grid, start Position, text string) []Operation {
	return plan(g, g.Wrap(start.X, start.Y), text, nil)
}

func plan(g *Grid, start Position, text string, logf func(string, ...interface{})) []Operation {
	keys := newKeyTable(g)
	for _, r := range text {
		if r != ' ' && r != '\n' {
			keys.Lookup(r)
		}
	}

	var ops []Operation
	cur := start
	for i, r := range text {
		switch r {
		case ' ':
			ops = append(ops, Operation{Kind: EmitSpace})
			continue
		case '\n':
			ops = append(ops, Operation{Kind: EmitNewline})
			continue
		}
		target, ok := keys.Get(r)
		if !ok {
			if logf != nil {
				logf("no key for %q at offset %d", r, i)
			}
			continue
		}
		dx, dy := target.X-cur.X, target.Y-cur.Y
		switch {
		case dx > 0:
			ops = append(ops, Operation{Kind: MoveRight, Count: dx})
		case dx < 0:
			ops = append(ops, Operation{Kind: MoveLeft, Count: -dx})
		}
		switch {
		case dy > 0:
			ops = append(ops, Operation{Kind: MoveDown, Count: dy})
		case dy < 0:
			ops = append(ops, Operation{Kind: MoveUp, Count: -dy})
		}
		ops = append(ops, Operation{Kind: SelectCurrent})
		cur = target
	}
	return ops
}

func tokens(ops []Operation) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}
