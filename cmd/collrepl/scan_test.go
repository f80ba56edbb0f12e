package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputLines = []string{
	"ls",
	"cities add Jakarta Bandung",
	`q enqueue "Pelanggan 1" "Pelanggan 2"`,
	"cities get 2 # a comment",
	"nums add -5 3.75\tx",
}

var tokenCounts = []int{1, 4, 4, 3, 5}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.repl")
	defer teardown()
	//
	for i, line := range inputLines {
		tokens, err := tokenize(line)
		if err != nil {
			t.Errorf("line #%d: %v", i, err)
			continue
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("expected token count for #%d to be %d, is %d: %v", i, tokenCounts[i],
				len(tokens), tokens)
		}
	}
}

func TestTokenKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.repl")
	defer teardown()
	//
	tokens, err := tokenize(`l set -1 "Kota Medan" 3.75`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []token{
		{kind: wordTok, text: "l"},
		{kind: wordTok, text: "set"},
		{kind: numTok, text: "-1", n: -1},
		{kind: stringTok, text: "Kota Medan"},
		{kind: wordTok, text: "3.75"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %v", len(expected), tokens)
	}
	for i, tok := range tokens {
		if tok != expected[i] {
			t.Errorf("token #%d: expected %v, have %v", i, expected[i], tok)
		}
	}
}
