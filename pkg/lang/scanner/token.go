/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_COMMENT
	TOK_IDENTIFIER
	TOK_KEYWORD
	TOK_NUMBER
	TOK_STRING

	// Operators
	TOK_PLUS
	TOK_MINUS
	TOK_EQ
	TOK_EQ_EQ

	// Pairs
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_BRACE_L
	TOK_BRACE_R
)

// Keywords holds the reserved words of the language. An identifier must
// match one of these exactly to lex as a keyword.
var Keywords = map[string]bool{
	"func": true,
	"let":  true,
}

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_COMMENT:
		return "TOK_COMMENT"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_KEYWORD:
		return "TOK_KEYWORD"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_EQ:
		return "TOK_EQ"
	case TOK_EQ_EQ:
		return "TOK_EQ_EQ"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	case TOK_BRACE_L:
		return "TOK_BRACE_L"
	case TOK_BRACE_R:
		return "TOK_BRACE_R"
	}
	return "TOK_UNKNOWN"
}
