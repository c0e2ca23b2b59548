package interpreter

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// OpKind tags an Operation.
type OpKind int

const (
	NoOp OpKind = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
	EmitSpace
	EmitNewline
	SelectCurrent
)

var opCodes = map[string]OpKind{
	"L": MoveLeft,
	"R": MoveRight,
	"U": MoveUp,
	"D": MoveDown,
	"_": EmitSpace,
	"N": EmitNewline,
	"S": SelectCurrent,
}

// Operation is one decoded instruction. Count is only meaningful for moves.
type Operation struct {
	Kind  OpKind
	Count int
}

// IsMove reports whether the operation changes the cursor position.
func (o Operation) IsMove() bool {
	switch o.Kind {
	case MoveLeft, MoveUp, MoveRight, MoveDown:
		return true
	}
	return false
}

// String renders the canonical token. Moves always carry their count and
// NoOp renders as the empty string.
func (o Operation) String() string {
	switch o.Kind {
	case MoveLeft:
		return "L:" + strconv.Itoa(o.Count)
	case MoveRight:
		return "R:" + strconv.Itoa(o.Count)
	case MoveUp:
		return "U:" + strconv.Itoa(o.Count)
	case MoveDown:
		return "D:" + strconv.Itoa(o.Count)
	case EmitSpace:
		return "_"
	case EmitNewline:
		return "N"
	case SelectCurrent:
		return "S"
	}
	return ""
}

// token is the grammar of a single instruction: CODE or CODE:COUNT.
type token struct {
	Code  string  `parser:"@Code"`
	Count *string `parser:"( ':' @Digits? )?"`
}

var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Code", Pattern: `[LRUDSN_]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Digits", Pattern: `[0-9]+`},
})

var parser = participle.MustBuild[token](participle.Lexer(tokenLexer))

// ParseToken decodes one instruction. Anything that is not exactly a token
// yields NoOp; a count that does not fit an int falls back to 1.
func ParseToken(s string) Operation {
	tok, err := parser.ParseString("", s)
	if err != nil {
		return Operation{Kind: NoOp}
	}
	kind, ok := opCodes[tok.Code]
	if !ok {
		return Operation{Kind: NoOp}
	}
	count := 1
	if tok.Count != nil {
		if n, err := strconv.Atoi(*tok.Count); err == nil {
			count = n
		}
	}
	return Operation{Kind: kind, Count: count}
}

// Step is a decoded field of an instruction string.
type Step struct {
	Op     Operation
	Token  string
	Offset int
}

// Parse splits an instruction string on ',' and decodes every field in
// order. It never fails; malformed fields become NoOp steps.
func Parse(instructions string) []Step {
	fields := Fields(instructions)
	steps := make([]Step, len(fields))
	for i, f := range fields {
		steps[i] = Step{Op: ParseToken(f.Text), Token: f.Text, Offset: f.Offset}
	}
	return steps
}
