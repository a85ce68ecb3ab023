/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package goplex

import "fmt"

// ArgumentError reports model data that violates a precondition of the
// operation it was passed to: a missing bound, an inverted bound pair, a
// length mismatch, conflicting variable kinds.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return "goplex: invalid argument: " + e.Msg
}

func argumentErrorf(format string, args ...interface{}) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// SolverError reports a failure from the native layer, or a solve that
// terminated without a usable solution. Code carries the originating native
// status code for diagnostics; it is 0 when the failure did not come with
// one.
type SolverError struct {
	Code int
	Msg  string
}

func (e *SolverError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("goplex: %s (CPLEX code %d)", e.Msg, e.Code)
	}
	return "goplex: " + e.Msg
}

// UnknownParameterError reports a parameter name with no entry in the
// parameter table.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("goplex: parameter %q not available", e.Name)
}

// Codes at or below this value signal success or informational status and
// are never surfaced as errors.
const successThreshold = 1000

// translateCode maps a native status code to an error, or nil for success.
// Codes missing from the table still produce a deterministic message
// embedding the raw code.
func translateCode(code int) error {
	if code <= successThreshold {
		return nil
	}
	if label, ok := errorCodes[code]; ok {
		return &SolverError{Code: code, Msg: label}
	}
	return &SolverError{Code: code, Msg: fmt.Sprintf("unknown CPLEX error %d", code)}
}
