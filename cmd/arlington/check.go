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
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	arlington "github.com/prashantbarca/arlington-pdf-model"
)

func newCheckCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check <grammar_folder>",
		Short: "Check an Arlington grammar file set for internal consistency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "report file (default stdout)")
	return cmd
}

func runCheck(cmd *cobra.Command, grammarDir, output string) error {
	grammar, loadErr := arlington.LoadDir(os.DirFS(grammarDir), nil)
	if grammar == nil || len(grammar.Objects) == 0 {
		if loadErr != nil {
			return loadErr
		}
		return fmt.Errorf("no grammar files in %s", grammarDir)
	}

	report := grammar.Check()

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if loadErr != nil {
		fmt.Fprintln(out, "load errors:", loadErr)
	}
	if _, err := report.WriteTo(out); err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), report)
	if loadErr != nil {
		return fmt.Errorf("%d grammar objects loaded with errors", len(grammar.Objects))
	}
	return nil
}

// printSummary writes the per-kind diagnostic counts as a table.
func printSummary(w io.Writer, report *arlington.Report) {
	counts := report.CountByKind()
	if len(counts) == 0 {
		fmt.Fprintln(w, colorize(color.FgGreen, "no findings"))
		return
	}

	kinds := make([]arlington.Kind, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KIND", "SEVERITY", "COUNT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	for _, kind := range kinds {
		severity := kind.Severity().String()
		if kind.Severity() == arlington.SeverityFatal {
			severity = colorize(color.FgRed, severity)
		}
		table.Append([]string{kind.String(), severity, strconv.Itoa(counts[kind])})
	}
	table.Render()
}

// colorize applies a color attribute when stdout is a terminal.
func colorize(attr color.Attribute, s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return color.New(attr).Sprint(s)
}
