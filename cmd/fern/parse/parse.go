/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"os"

	"github.com/dburkart/fern/pkg/lang/ast"
	"github.com/dburkart/fern/pkg/lang/parser"
	"github.com/dburkart/fern/pkg/lang/scanner"
	"github.com/dburkart/fern/pkg/repl"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := ReadSource(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("file", args[0]).Msg("unable to read source")
		}
		log.Debug().
			Str("file", args[0]).
			Str("size", humanize.Bytes(uint64(len(source)))).
			Msg("loaded source")

		if viper.GetBool("parse.tokens") {
			tokens := scanner.Scan(source)
			writer := repl.NewOutputWriter(os.Stdout, viper.GetString("parse.output"))
			writer.Write(repl.TokenView(tokens))
			return
		}

		program, err := parser.Parse(source)
		if err != nil {
			fmt.Fprint(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Print(ast.Dump(program))
	},
}

func init() {
	// Flags for this command
	Command.Flags().Bool("tokens", false, "Print the token stream instead of parsing")
	Command.Flags().StringP("output", "o", "text", "Output format of the token stream [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("parse.tokens", Command.Flags().Lookup("tokens"))
	viper.BindPFlag("parse.output", Command.Flags().Lookup("output"))
}

// ReadSource slurps a compilation unit into memory. The front end only
// ever sees in-memory text; file handling stays out here.
func ReadSource(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to read source file")
	}
	return string(contents), nil
}
