package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories for command lines.
type tokKind int

const (
	wordTok tokKind = iota + 1
	numTok
	stringTok
)

func (k tokKind) String() string {
	switch k {
	case wordTok:
		return "word"
	case numTok:
		return "number"
	case stringTok:
		return "string"
	}
	return "?"
}

// token is a lexeme of a command line. For strings, text has the quotes
// stripped; for numbers, n holds the value.
type token struct {
	kind tokKind
	text string
	n    int
}

func (t token) String() string {
	return fmt.Sprintf("<%s %q>", t.kind, t.text)
}

var lexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time DFA compilation

func commandLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#.*`), skip) // comments
		lx.Add([]byte(`\"[^"]*\"`), makeToken(stringTok))
		lx.Add([]byte(`[\-]?[0-9]+`), makeToken(numTok))
		lx.Add([]byte(`[^ "#]+`), makeToken(wordTok))
		lx.Add([]byte(` +`), skip)
		if lexerErr = lx.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(kind tokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// tokenize splits a command line into tokens.
func tokenize(line string) ([]token, error) {
	lx, err := commandLexer()
	if err != nil {
		return nil, err
	}
	line = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, line)
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at column %d", ui.StartColumn)
			}
			return nil, err
		}
		lmtok := tok.(*lexmachine.Token)
		t := token{kind: tokKind(lmtok.Type), text: string(lmtok.Lexeme)}
		switch t.kind {
		case stringTok:
			t.text = t.text[1 : len(t.text)-1]
		case numTok:
			if t.n, err = strconv.Atoi(t.text); err != nil {
				return nil, err
			}
		}
		tracer().Debugf("token %v", t)
		tokens = append(tokens, t)
	}
	return tokens, nil
}
