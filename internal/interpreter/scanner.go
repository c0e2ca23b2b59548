package interpreter

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Field is one comma-separated piece of an instruction string together with
// its byte offset.
type Field struct {
	Text   string
	Offset int
}

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSep
)

type lexeme struct {
	kind   fieldKind
	text   string
	offset int
}

var fieldLexer = newFieldLexer()

func newFieldLexer() *lexmachine.Lexer {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`,`), lexAction(fieldSep))
	lx.Add([]byte(`[^,]+`), lexAction(fieldText))
	if err := lx.Compile(); err != nil {
		panic(err)
	}
	return lx
}

func lexAction(kind fieldKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return lexeme{kind: kind, text: string(m.Bytes), offset: m.TC}, nil
	}
}

// Fields splits s on ','. Empty fields are kept, so "" yields one empty
// field and "a,,b" yields three.
func Fields(s string) []Field {
	var fields []Field
	scanner, err := fieldLexer.Scanner([]byte(s))
	if err != nil {
		return []Field{{Text: s}}
	}
	// pending is true while a field is expected but none has been seen.
	pending := true
	offset := 0
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			break
		}
		lx := tok.(lexeme)
		switch lx.kind {
		case fieldSep:
			if pending {
				fields = append(fields, Field{Offset: offset})
			}
			pending = true
			offset = lx.offset + len(lx.text)
		case fieldText:
			fields = append(fields, Field{Text: lx.text, Offset: lx.offset})
			pending = false
		}
	}
	if pending {
		fields = append(fields, Field{Offset: offset})
	}
	return fields
}
