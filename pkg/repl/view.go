/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/json"
	"strconv"

	"github.com/dburkart/fern/pkg/common/parse"
)

// TokenView adapts a scanned token stream for the output writers.
type TokenView []parse.Token

func (v TokenView) Headers() []string {
	return []string{"Type", "Lexeme", "Start", "End"}
}

func (v TokenView) Values() [][]string {
	values := [][]string{}

	for _, t := range v {
		values = append(values, []string{
			t.Type.ToString(),
			t.Lexeme,
			strconv.Itoa(t.Location.Start),
			strconv.Itoa(t.Location.End),
		})
	}

	return values
}

func (v TokenView) MarshalJSON() ([]byte, error) {
	type row struct {
		Type   string `json:"type"`
		Lexeme string `json:"lexeme"`
		Start  int    `json:"start"`
		End    int    `json:"end"`
	}

	rows := []row{}
	for _, t := range v {
		rows = append(rows, row{
			Type:   t.Type.ToString(),
			Lexeme: t.Lexeme,
			Start:  t.Location.Start,
			End:    t.Location.End,
		})
	}

	return json.Marshal(rows)
}
