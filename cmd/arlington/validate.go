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
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	arlington "github.com/prashantbarca/arlington-pdf-model"
	"github.com/prashantbarca/arlington-pdf-model/document"
	"github.com/prashantbarca/arlington-pdf-model/validate"
)

func newValidateCmd() *cobra.Command {
	var pdfVersion string

	cmd := &cobra.Command{
		Use:   "validate <input> <grammar_folder> <report>",
		Short: "Validate document object graphs against the grammar",
		Long: `Validate a document object graph (in its JSON shim form) against the
Arlington grammar.  When input is a folder, every .json file below it is
validated on parallel workers and one report file per document is
written into the report folder.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], args[1], args[2], pdfVersion)
		},
	}
	cmd.Flags().StringVarP(&pdfVersion, "pdf-version", "V", "2.0", "validate against this PDF version")
	return cmd
}

func runValidate(cmd *cobra.Command, input, grammarDir, reportPath, pdfVersion string) error {
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
	logger := newLogger()

	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		report, err := validateFile(input, reportPath, reduced, logger)
		if err != nil {
			return err
		}
		printOutcome(cmd, input, report)
		printSummary(cmd.OutOrStdout(), report)
		return nil
	}

	var inputs []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			inputs = append(inputs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Runs share only the read-only grammar; mu guards the report name
	// set and the outcome writer, which workers would otherwise hit
	// concurrently.
	var mu sync.Mutex
	taken := make(map[string]bool)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, in := range inputs {
		in := in
		g.Go(func() error {
			out := reportFileName(reportPath, in, &mu, taken)
			report, err := validateFile(in, out, reduced, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			mu.Lock()
			printOutcome(cmd, in, report)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// validateFile opens one document in its JSON shim form, runs a
// validation starting at the trailer, and writes the report.
func validateFile(input, output string, grammar *arlington.Grammar, logger *zap.Logger) (*arlington.Report, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	doc, err := document.ReadJSON(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	v := validate.New(grammar, doc, &validate.Options{Logger: logger})
	report := v.RunTrailer()

	out, err := os.Create(output)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	fmt.Fprintf(out, "BEGIN - arlington %s - %q - PDF %s\n", toolVersion, input, grammarVersionLabel(grammar))
	if _, err := report.WriteTo(out); err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(out, "END")
	return report, err
}

// grammarVersionLabel names the grammar in report headers; the reduced
// grammar itself carries no version, so the object count stands in.
func grammarVersionLabel(grammar *arlington.Grammar) string {
	return fmt.Sprintf("grammar (%d objects)", len(grammar.Objects))
}

func printOutcome(cmd *cobra.Command, input string, report *arlington.Report) {
	outcome := colorize(color.FgGreen, "PASS")
	if report.HasFatal() {
		outcome = colorize(color.FgRed, "FAIL")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%d findings)\n", outcome, input, report.Len())
}

// reportFileName derives the per-document report file below dir,
// appending underscores while the name is already taken.
func reportFileName(dir, input string, mu *sync.Mutex, taken map[string]bool) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	mu.Lock()
	defer mu.Unlock()
	name := filepath.Join(dir, stem+".txt")
	for taken[name] || fileExists(name) {
		stem += "_"
		name = filepath.Join(dir, stem+".txt")
	}
	taken[name] = true
	return name
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
