/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package fern

import (
	"fmt"
	"os"

	"github.com/dburkart/fern/cmd/fern/lex"
	"github.com/dburkart/fern/cmd/fern/parse"
	"github.com/dburkart/fern/cmd/fern/repl"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "fern",
		Short: "Fern is a small experimental programming language",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the fern config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("fern.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("fern.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("fern version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	parse.Command.Version = rootCmd.Version
	lex.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	rootCmd.AddCommand(parse.Command)
	rootCmd.AddCommand(lex.Command)
	rootCmd.AddCommand(repl.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
