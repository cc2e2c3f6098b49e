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

package arlington

// MalformedGrammarError indicates that one grammar source could not be
// parsed into an [Object].  Loading other grammar objects of the same file
// set is not affected.
type MalformedGrammarError struct {
	Name string // grammar object name
	Err  error
}

func (err *MalformedGrammarError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed grammar " + err.Name + middle
}

func (err *MalformedGrammarError) Unwrap() error {
	return err.Err
}

// ReductionError indicates a positional-arity violation found while
// reducing one grammar object to a target version.  It points at a defect
// in the master grammar and aborts the reduction of that object only.
type ReductionError struct {
	Object string
	Key    string
	Err    error
}

func (err *ReductionError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "cannot reduce " + err.Object + "/" + err.Key + middle
}

func (err *ReductionError) Unwrap() error {
	return err.Err
}
