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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	arlington "github.com/prashantbarca/arlington-pdf-model"
	"github.com/prashantbarca/arlington-pdf-model/export"
)

func newReduceCmd() *cobra.Command {
	var pdfVersion string
	var output string

	cmd := &cobra.Command{
		Use:   "reduce <grammar_folder>",
		Short: "Derive the grammar for one PDF version and export it as XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(cmd, args[0], pdfVersion, output)
		},
	}
	cmd.Flags().StringVarP(&pdfVersion, "pdf-version", "V", "2.0", "target PDF version")
	cmd.Flags().StringVarP(&output, "output", "o", "", "XML output file (default stdout)")
	return cmd
}

func runReduce(cmd *cobra.Command, grammarDir, pdfVersion, output string) error {
	target, err := arlington.ParseVersion(pdfVersion)
	if err != nil {
		return fmt.Errorf("%w: %q", err, pdfVersion)
	}

	grammar, err := arlington.LoadDir(os.DirFS(grammarDir), nil)
	if err != nil {
		return err
	}
	reduced, err := grammar.Reduce(target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return export.XML(out, reduced, target)
}
