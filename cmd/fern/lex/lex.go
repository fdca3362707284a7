/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lex

import (
	"os"

	"github.com/dburkart/fern/cmd/fern/parse"
	"github.com/dburkart/fern/pkg/lang/scanner"
	"github.com/dburkart/fern/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the token stream",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := parse.ReadSource(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("file", args[0]).Msg("unable to read source")
		}

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("lex.output"))
		writer.Write(repl.TokenView(scanner.Scan(source)))
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of the token stream [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("lex.output", Command.Flags().Lookup("output"))
}
