// arlington-pdf-model - validate PDF files against the Arlington PDF model
// Copyright (C) 2026  The arlington-pdf-model contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command arlington validates PDF object graphs against the Arlington
// PDF model, checks the internal consistency of a grammar file set, and
// exports version-reduced grammars.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const toolVersion = "0.2.0"

var debug bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "arlington",
		Short: "Work with the Arlington PDF model grammar",
		Long: `The Arlington PDF model is a declarative, version-aware grammar for the
PDF file format, authored as one TSV file per PDF object type.  This
tool checks a grammar file set for internal consistency, derives the
view of the grammar for a single PDF version, and validates document
object graphs against it.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug tracing")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReduceCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "arlington", toolVersion)
		},
	}
}
