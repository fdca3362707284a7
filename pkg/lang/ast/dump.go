/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Node) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	// Merged comment blocks span lines; keep each dump entry on one
	value := strings.ReplaceAll(node.Value(), "\n", "\\n")

	t := reflect.TypeOf(node)
	d.Output += level + t.Elem().Name() + "[" + value + "]" + "\n"
	d.indent += 1

	return d
}

// Dump renders a parsed program as an indented tree, one node per line.
func Dump(program []Declaration) string {
	d := Dumper{}

	for _, declaration := range program {
		Walk(&d, declaration)
	}

	return d.Output
}
