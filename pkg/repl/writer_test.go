/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dburkart/fern/pkg/lang/scanner"
)

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer

	w := NewOutputWriter(&buf, "csv")
	w.Write(TokenView(scanner.Scan("let x")))

	want := "Type,Lexeme,Start,End\nTOK_KEYWORD,let,0,3\nTOK_IDENTIFIER,x,4,5\n"
	if buf.String() != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer

	w := NewOutputWriter(&buf, "table")
	w.Write(TokenView(scanner.Scan("let x")))

	out := buf.String()
	for _, want := range []string{"TYPE", "LEXEME", "TOK_KEYWORD", "let", "TOK_IDENTIFIER"} {
		if !strings.Contains(out, want) {
			t.Errorf("wanted table output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer

	w := NewOutputWriter(&buf, "json")
	w.Write(TokenView(scanner.Scan("x")))

	want := `[{"type":"TOK_IDENTIFIER","lexeme":"x","start":0,"end":1}]`
	if strings.TrimSpace(buf.String()) != want {
		t.Errorf("wanted %s, got %s", want, buf.String())
	}
}
