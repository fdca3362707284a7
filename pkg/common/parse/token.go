/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// TokenType is implemented by each scanner's token-type enumeration.
type TokenType interface {
	ToString() string
}

// Location is a half-open byte range [Start, End) into the scanned input.
type Location struct {
	Start int
	End   int
}

// Token is a single lexeme classified by the scanner.
//
// Location always covers the full consumed span, delimiters included.
// Lexeme holds the token's text, which for comment and string tokens
// excludes the delimiters.
type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}
