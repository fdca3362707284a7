/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Printable is any tabular view of front-end output (token streams,
// declaration summaries) that the writers can render.
type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable)
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(v.Headers())
	wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) {
	table := tablewriter.NewWriter(w.w)
	table.Header(v.Headers())
	table.Bulk(v.Values())
	table.Render()
}

func (w JSONWriter) Write(v Printable) {
	enc := json.NewEncoder(w.w)
	enc.Encode(v)
}
