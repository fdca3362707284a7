/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/dburkart/fern/pkg/common/parse"
)

type Scanner struct {
	Input string
	Start int
	Pos   int
}

// Scan tokenizes the whole input. Scanning is total: unrecognized
// characters surface as TOK_INVALID tokens rather than errors, so any
// input produces a deterministic token sequence.
func Scan(input string) []parse.Token {
	s := Scanner{Input: input}
	tokens := []parse.Token{}

	for {
		t := s.Emit()
		if t.Type == TOK_EOF {
			break
		}
		tokens = append(tokens, t)
	}

	return tokens
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier.
//
// Grammar:
//
//	identifier      = 1*ALPHA
func (s *Scanner) MatchIdentifier() int {
	size := 0

	for s.Pos+size < len(s.Input) && isLetter(rune(s.Input[s.Pos+size])) {
		size++
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is a
// numeric literal.
//
// Grammar:
//
//	number          = 1*DIGIT [ "." 1*DIGIT ]
func (s *Scanner) MatchNumber() int {
	size := 0

	for s.Pos+size < len(s.Input) && isDigit(rune(s.Input[s.Pos+size])) {
		size++
	}

	// A decimal point only extends the literal when a digit follows it,
	// and only the first one does. "1.2.3" lexes as "1.2", '.', "3".
	if s.Pos+size+1 < len(s.Input) && s.Input[s.Pos+size] == '.' &&
		isDigit(rune(s.Input[s.Pos+size+1])) {
		size++
		for s.Pos+size < len(s.Input) && isDigit(rune(s.Input[s.Pos+size])) {
			size++
		}
	}

	return size
}

// MatchString returns the length of the next token, assuming it is a
// string literal. The consumed span includes the closing quote when the
// literal is terminated; a line terminator or end of input also ends the
// literal, without being consumed.
//
// Grammar:
//
//	string          = SQUOTE *CHAR [ SQUOTE ]
func (s *Scanner) MatchString() int {
	size := 1 // opening quote

	for s.Pos+size < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos+size:])
		if r == '\n' {
			break
		}
		size += width
		if r == '\'' {
			break
		}
	}

	return size
}

// MatchComment returns the length of the next token, assuming it is a
// single-line comment. The terminating newline is not consumed.
//
// Grammar:
//
//	comment         = "//" *CHAR
func (s *Scanner) MatchComment() int {
	size := len("//")

	for s.Pos+size < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos+size:])
		if r == '\n' {
			break
		}
		size += width
	}

	return size
}

// Emit the next Token found on Scanner.Input
func (s *Scanner) Emit() parse.Token {
	var t parse.Token
	var contents string
	trimmed := false

	for {
		if s.Pos >= len(s.Input) {
			s.Start = s.Pos
			return parse.Token{
				Type:     TOK_EOF,
				Location: parse.Location{Start: s.Pos, End: s.Pos},
			}
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		found := true
		skip := 0

		switch {
		case r == ' ' || r == '\n' || r == '\t':
			skip = width
			found = false
		case r == '/':
			if strings.HasPrefix(s.Input[s.Pos:], "//") {
				t.Type = TOK_COMMENT
				skip = s.MatchComment()
				contents = s.Input[s.Start+2 : s.Start+skip]
				trimmed = true
				break
			}
			// A lone slash is not a valid token
			t.Type = TOK_INVALID
			skip = width
		case r == '\'':
			t.Type = TOK_STRING
			skip = s.MatchString()
			contents = strings.TrimSuffix(s.Input[s.Start+1:s.Start+skip], "'")
			trimmed = true
		case r == '(':
			t.Type = TOK_PAREN_L
			skip = width
		case r == ')':
			t.Type = TOK_PAREN_R
			skip = width
		case r == '{':
			t.Type = TOK_BRACE_L
			skip = width
		case r == '}':
			t.Type = TOK_BRACE_R
			skip = width
		case r == '+':
			t.Type = TOK_PLUS
			skip = width
		case r == '-':
			t.Type = TOK_MINUS
			skip = width
		case r == '=':
			if strings.HasPrefix(s.Input[s.Pos:], "==") {
				t.Type = TOK_EQ_EQ
				skip = len("==")
				break
			}
			t.Type = TOK_EQ
			skip = width
		case isDigit(r):
			t.Type = TOK_NUMBER
			skip = s.MatchNumber()
		case isLetter(r):
			skip = s.MatchIdentifier()
			if Keywords[s.Input[s.Start:s.Start+skip]] {
				t.Type = TOK_KEYWORD
			} else {
				t.Type = TOK_IDENTIFIER
			}
		default:
			t.Type = TOK_INVALID
			skip = width
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	if trimmed {
		t.Lexeme = contents
	} else {
		t.Lexeme = s.Input[s.Start:s.Pos]
	}
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	return t
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
