/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/fern/pkg/lang/ast"
	"github.com/dburkart/fern/pkg/lang/parser"
	"github.com/dburkart/fern/pkg/lang/scanner"
	output "github.com/dburkart/fern/pkg/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt for trying out the language",

	Run: func(cmd *cobra.Command, args []string) {
		readlinePrompt(viper.GetString("repl.output"))
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of echoed tokens [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("repl.output", Command.Flags().Lookup("output"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(format string) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem(".tokens"),
		readline.PcItem(".exit"),
		readline.PcItem("func"),
		readline.PcItem("let"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer for token echo
	writer := output.NewOutputWriter(os.Stdout, format)
	echoTokens := false

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		switch line {
		case ".exit":
			return
		case ".tokens":
			echoTokens = !echoTokens
			continue
		}

		if echoTokens {
			writer.Write(output.TokenView(scanner.Scan(line)))
		}

		program, err := parser.Parse(line)
		if err != nil {
			fmt.Fprint(os.Stderr, err)
			continue
		}

		fmt.Print(ast.Dump(program))
	}
}
