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

// #include <ilcplex/cplex.h>
// #include <stdlib.h>
import "C"

import (
	"math"
	"sort"
	"unsafe"
)

// senseFor encodes a (lower, upper) bound pair into the native row sense.
// Infinities of either sign stand for "no bound" on the respective side.
func senseFor(lower, upper float64) (sense C.char, rhs, rng C.double, err error) {
	switch {
	case math.IsInf(lower, 0) && math.IsInf(upper, 0):
		return 0, 0, 0, argumentErrorf("at least one bound required")
	case math.IsInf(lower, 0):
		return 'L', C.double(upper), 0, nil
	case math.IsInf(upper, 0):
		return 'G', C.double(lower), 0, nil
	case lower == upper:
		return 'E', C.double(lower), 0, nil
	case upper < lower:
		return 0, 0, 0, argumentErrorf("inverted bounds: %g > %g", lower, upper)
	default:
		return 'R', C.double(lower), C.double(upper - lower), nil
	}
}

/* Constraint-related functions */

// ConstraintCount returns the number of individual constraints in the model
func (model *Model) ConstraintCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return int(C.CPXgetnumrows(model.env, model.lp))
}

// AddConstraints bulk-appends n empty rows sharing one bound pair. Use
// math.Inf for an unbounded side; at least one side must be given. names,
// if given, must have length n.
func (model *Model) AddConstraints(n int, lower, upper float64, names []string) error {
	if n == 0 {
		return nil
	}
	if names != nil && len(names) != n {
		return argumentErrorf("expected %d names, got %d", n, len(names))
	}

	sense, rhs, rng, err := senseFor(lower, upper)
	if err != nil {
		return err
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	rhsArr := make([]C.double, n)
	senseArr := make([]C.char, n)
	for i := range rhsArr {
		rhsArr[i] = rhs
		senseArr[i] = sense
	}

	var pRng *C.double
	if sense == 'R' {
		rngArr := make([]C.double, n)
		for i := range rngArr {
			rngArr[i] = rng
		}
		pRng = &rngArr[0]
	}

	cNames, release := cStrings(names)
	defer release()

	return translateCode(int(C.CPXnewrows(model.env, model.lp, C.int(n),
		&rhsArr[0], &senseArr[0], pRng, cNames)))
}

// AddConstraint appends one row with the given sparse coefficients, written
// in a single batched update, and returns the new row's index. Unspecified
// coefficients are implicitly 0.
func (model *Model) AddConstraint(indices []int, values []float64, lower, upper float64, name string) (int, error) {
	if len(indices) != len(values) {
		return 0, argumentErrorf("inconsistent number of variables and coefficients: %d != %d", len(indices), len(values))
	}

	sense, rhs, rng, err := senseFor(lower, upper)
	if err != nil {
		return 0, err
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	row := int(C.CPXgetnumrows(model.env, model.lp))

	var pInd *C.int
	var pVal *C.double
	if len(indices) > 0 {
		cInd := make([]C.int, len(indices))
		cVal := make([]C.double, len(values))
		for i, ind := range indices {
			cInd[i] = C.int(ind)
			cVal[i] = C.double(values[i])
		}
		pInd = &cInd[0]
		pVal = &cVal[0]
	}

	var cName **C.char
	if name != "" {
		arr := []*C.char{C.CString(name)}
		defer C.free(unsafe.Pointer(arr[0]))
		cName = &arr[0]
	}

	rmatbeg := C.int(0)
	status := C.CPXaddrows(model.env, model.lp, 0, 1, C.int(len(indices)),
		&rhs, &sense, &rmatbeg, pInd, pVal, nil, cName)
	if err := translateCode(int(status)); err != nil {
		return 0, err
	}

	// CPXaddrows carries no range extent, so range rows need a second call
	if sense == 'R' {
		cRow := C.int(row)
		if status := C.CPXchgrngval(model.env, model.lp, 1, &cRow, &rng); status != 0 {
			return 0, translateCode(int(status))
		}
	}

	return row, nil
}

// AddColumn appends one new column and sets its nonzero coefficients across
// the given existing rows in a single batched update; the column-oriented
// dual of AddConstraint. It returns the new column's index.
func (model *Model) AddColumn(rows []int, values []float64) (int, error) {
	if len(rows) != len(values) {
		return 0, argumentErrorf("inconsistent number of rows and coefficients: %d != %d", len(rows), len(values))
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	var pInd *C.int
	var pVal *C.double
	if len(rows) > 0 {
		cInd := make([]C.int, len(rows))
		cVal := make([]C.double, len(values))
		for i, row := range rows {
			cInd[i] = C.int(row)
			cVal[i] = C.double(values[i])
		}
		pInd = &cInd[0]
		pVal = &cVal[0]
	}

	cmatbeg := C.int(0)
	status := C.CPXaddcols(model.env, model.lp, 1, C.int(len(rows)),
		nil, &cmatbeg, pInd, pVal, nil, nil, nil)
	if err := translateCode(int(status)); err != nil {
		return 0, err
	}

	return int(C.CPXgetnumcols(model.env, model.lp)) - 1, nil
}

// RemoveConstraint deletes exactly one row. All subsequent row indices shift
// down by one.
func (model *Model) RemoveConstraint(index int) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	return translateCode(int(C.CPXdelrows(model.env, model.lp, C.int(index), C.int(index))))
}

// Row returns the sparse nonzero entries of the given row, ordered by
// variable index.
func (model *Model) Row(index int) ([]int, []float64, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	var nz, surplus, beg C.int

	status := C.CPXgetrows(model.env, model.lp, &nz, &beg, nil, nil, 0, &surplus,
		C.int(index), C.int(index))
	if status != 0 && int(status) != cpxerrNegativeSurplus {
		return nil, nil, translateCode(int(status))
	}
	if surplus == 0 {
		return nil, nil, nil
	}

	n := int(-surplus)
	cInd := make([]C.int, n)
	cVal := make([]C.double, n)
	status = C.CPXgetrows(model.env, model.lp, &nz, &beg, &cInd[0], &cVal[0], C.int(n), &surplus,
		C.int(index), C.int(index))
	if err := translateCode(int(status)); err != nil {
		return nil, nil, err
	}

	indices := make([]int, n)
	values := make([]float64, n)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return cInd[order[a]] < cInd[order[b]] })
	for i, o := range order {
		indices[i] = int(cInd[o])
		values[i] = float64(cVal[o])
	}

	return indices, values, nil
}

// RowBounds decodes the given row's sense and bound value(s) back into a
// (lower, upper) pair, the inverse of the encoding applied on insertion. An
// absent side reads back as the corresponding infinity.
func (model *Model) RowBounds(index int) (lower, upper float64, err error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	var sense C.char
	if status := C.CPXgetsense(model.env, model.lp, &sense, C.int(index), C.int(index)); status != 0 {
		return 0, 0, translateCode(int(status))
	}

	var rhs C.double
	if status := C.CPXgetrhs(model.env, model.lp, &rhs, C.int(index), C.int(index)); status != 0 {
		return 0, 0, translateCode(int(status))
	}

	switch sense {
	case 'L':
		return math.Inf(-1), fromNative(rhs), nil
	case 'G':
		return fromNative(rhs), math.Inf(1), nil
	case 'E':
		return fromNative(rhs), fromNative(rhs), nil
	case 'R':
		var rng C.double
		if status := C.CPXgetrngval(model.env, model.lp, &rng, C.int(index), C.int(index)); status != 0 {
			return 0, 0, translateCode(int(status))
		}
		return float64(rhs), float64(rhs) + float64(rng), nil
	default:
		return 0, 0, &SolverError{Msg: "unrecognized row sense " + string(rune(sense))}
	}
}

// ConstraintName returns the name of the given row, or the empty string if
// it was created without one and the model carries no row names at all.
func (model *Model) ConstraintName(index int) (string, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return readName(func(name **C.char, store *C.char, space C.int, surplus *C.int) C.int {
		return C.CPXgetrowname(model.env, model.lp, name, store, space, surplus, C.int(index), C.int(index))
	})
}
