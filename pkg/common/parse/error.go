/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type SyntaxError struct {
	Location Location
	Message  string
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Message: m}
}

// FormatError renders a caret diagnostic for the offending span, quoting
// only the source line containing it.
func (s *SyntaxError) FormatError(input string) string {
	start := s.Location.Start
	if start > len(input) {
		start = len(input)
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += lineStart
	}
	lineNumber := strings.Count(input[:start], "\n") + 1

	column := start - lineStart
	repeat := s.Location.End - s.Location.Start - 1
	if repeat < 0 {
		repeat = 0
	}
	// Keep the underline on the quoted line
	if column+repeat > lineEnd-lineStart {
		repeat = lineEnd - lineStart - column
		if repeat < 0 {
			repeat = 0
		}
	}

	errorString := fmt.Sprintf("Syntax error found on line %d:\n", lineNumber)
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", column), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}
