/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"testing"

	"github.com/dburkart/fern/pkg/common/parse"
)

func assertTokens(t *testing.T, input string, wantTypes []TokenType, wantLexemes []string) {
	t.Helper()

	tokens := Scan(input)

	if len(tokens) != len(wantTypes) {
		t.Fatalf("wanted %d tokens, got %d: %v", len(wantTypes), len(tokens), tokens)
	}

	for i, tok := range tokens {
		if tok.Type != wantTypes[i] {
			t.Errorf("token %d: wanted %s, got %s", i, wantTypes[i].ToString(), tok.Type.ToString())
		}
		if tok.Lexeme != wantLexemes[i] {
			t.Errorf("token %d: wanted lexeme %q, got %q", i, wantLexemes[i], tok.Lexeme)
		}
	}
}

func TestScanEmpty(t *testing.T) {
	assertTokens(t, "", []TokenType{}, []string{})
}

func TestScanWhitespaceOnly(t *testing.T) {
	assertTokens(t, " \n \n\t", []TokenType{}, []string{})
}

func TestScanUnknown(t *testing.T) {
	assertTokens(t, "!", []TokenType{TOK_INVALID}, []string{"!"})
}

func TestScanLoneSlash(t *testing.T) {
	assertTokens(t, "/", []TokenType{TOK_INVALID}, []string{"/"})
}

func TestScanKeywordIsExactMatch(t *testing.T) {
	assertTokens(t, "func", []TokenType{TOK_KEYWORD}, []string{"func"})
	assertTokens(t, "let", []TokenType{TOK_KEYWORD}, []string{"let"})

	// Keyword match is exact, not prefix
	assertTokens(t, "function", []TokenType{TOK_IDENTIFIER}, []string{"function"})
	assertTokens(t, "letter", []TokenType{TOK_IDENTIFIER}, []string{"letter"})
}

func TestScanIdentifierIsLettersOnly(t *testing.T) {
	assertTokens(t, "abc1",
		[]TokenType{TOK_IDENTIFIER, TOK_NUMBER},
		[]string{"abc", "1"})
	assertTokens(t, "a_b",
		[]TokenType{TOK_IDENTIFIER, TOK_INVALID, TOK_IDENTIFIER},
		[]string{"a", "_", "b"})
}

func TestScanNumber(t *testing.T) {
	assertTokens(t, "12345", []TokenType{TOK_NUMBER}, []string{"12345"})
	assertTokens(t, "1.5", []TokenType{TOK_NUMBER}, []string{"1.5"})
}

func TestScanNumberSingleDecimalPoint(t *testing.T) {
	assertTokens(t, "1.2.3",
		[]TokenType{TOK_NUMBER, TOK_INVALID, TOK_NUMBER},
		[]string{"1.2", ".", "3"})

	// A trailing point is not interior, so it is not consumed
	assertTokens(t, "1.",
		[]TokenType{TOK_NUMBER, TOK_INVALID},
		[]string{"1", "."})
}

func TestScanComment(t *testing.T) {
	assertTokens(t, "// a", []TokenType{TOK_COMMENT}, []string{" a"})
	assertTokens(t, "//", []TokenType{TOK_COMMENT}, []string{""})
}

func TestScanCommentTerminatedByNewline(t *testing.T) {
	assertTokens(t, "// a\nb",
		[]TokenType{TOK_COMMENT, TOK_IDENTIFIER},
		[]string{" a", "b"})
}

func TestScanString(t *testing.T) {
	assertTokens(t, "'foo'", []TokenType{TOK_STRING}, []string{"foo"})
	assertTokens(t, "''", []TokenType{TOK_STRING}, []string{""})
}

func TestScanStringUnterminated(t *testing.T) {
	assertTokens(t, "'foo", []TokenType{TOK_STRING}, []string{"foo"})
	assertTokens(t, "'foo\nbar",
		[]TokenType{TOK_STRING, TOK_IDENTIFIER},
		[]string{"foo", "bar"})
}

func TestScanStringDoesNotEatFollowingCharacter(t *testing.T) {
	assertTokens(t, "'foo'x",
		[]TokenType{TOK_STRING, TOK_IDENTIFIER},
		[]string{"foo", "x"})
}

func TestScanOperators(t *testing.T) {
	assertTokens(t, "+ - = ==",
		[]TokenType{TOK_PLUS, TOK_MINUS, TOK_EQ, TOK_EQ_EQ},
		[]string{"+", "-", "=", "=="})
}

func TestScanEqualityMaximalMunch(t *testing.T) {
	assertTokens(t, "===",
		[]TokenType{TOK_EQ_EQ, TOK_EQ},
		[]string{"==", "="})
}

func TestScanPairs(t *testing.T) {
	assertTokens(t, "(){}",
		[]TokenType{TOK_PAREN_L, TOK_PAREN_R, TOK_BRACE_L, TOK_BRACE_R},
		[]string{"(", ")", "{", "}"})
}

func TestScanFunctionDeclaration(t *testing.T) {
	assertTokens(t, "func main() { }",
		[]TokenType{TOK_KEYWORD, TOK_IDENTIFIER, TOK_PAREN_L, TOK_PAREN_R, TOK_BRACE_L, TOK_BRACE_R},
		[]string{"func", "main", "(", ")", "{", "}"})
}

// Token spans cover the input in order: spans never overlap, and the
// text between consecutive spans is whitespace only.
func TestScanCoverage(t *testing.T) {
	inputs := []string{
		"func main() {\n\tlet x = 1.5 + 'two'\n\tx == 3 - y ? $\n}",
		"1.2.3 'unterminated\n// trailing comment",
		"=== != 'a' b //",
	}

	isBlank := func(s string) bool {
		return strings.Trim(s, " \n\t") == ""
	}

	for _, input := range inputs {
		last := 0
		for _, tok := range Scan(input) {
			if tok.Location.Start < last {
				t.Errorf("overlapping span %v in %q", tok.Location, input)
				continue
			}
			if gap := input[last:tok.Location.Start]; !isBlank(gap) {
				t.Errorf("unconsumed text %q before span %v in %q", gap, tok.Location, input)
			}
			last = tok.Location.End
		}

		if tail := input[last:]; !isBlank(tail) {
			t.Errorf("unconsumed text %q at end of %q", tail, input)
		}
	}
}

func TestScanLocations(t *testing.T) {
	tokens := Scan("'foo' + bar")

	want := []parse.Location{
		{Start: 0, End: 5},
		{Start: 6, End: 7},
		{Start: 8, End: 11},
	}

	if len(tokens) != len(want) {
		t.Fatalf("wanted %d tokens, got %d", len(want), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Location != want[i] {
			t.Errorf("token %d: wanted location %v, got %v", i, want[i], tok.Location)
		}
	}
}
