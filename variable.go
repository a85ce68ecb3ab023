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
	"unsafe"
)

type VariableType C.char

const (
	ContinuousVariable = VariableType('C')
	BinaryVariable     = VariableType('B')
	IntegerVariable    = VariableType('I')
)

// VarOptions describes a single column to be added to the model. The zero
// value requests the native defaults: lower bound 0, no upper bound,
// continuous kind, no name, objective coefficient 0.
//
// Lower and Upper are pointers so that "not given" is distinguishable from
// an explicit value; an explicit infinity means unbounded on that side. At
// most one of Binary, Integer and Continuous may be set; with none set the
// variable is continuous.
type VarOptions struct {
	Lower      *float64
	Upper      *float64
	Binary     bool
	Integer    bool
	Continuous bool
	Name       string
	Obj        float64
}

func (o VarOptions) kind() (VariableType, error) {
	requested := 0
	for _, b := range []bool{o.Binary, o.Integer, o.Continuous} {
		if b {
			requested++
		}
	}
	if requested > 1 {
		return 0, argumentErrorf("at most one variable kind may be requested")
	}

	switch {
	case o.Binary:
		return BinaryVariable, nil
	case o.Integer:
		return IntegerVariable, nil
	default:
		return ContinuousVariable, nil
	}
}

/* Column-related functions */

// VariableCount returns the number of columns currently in the model.
func (model *Model) VariableCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return int(C.CPXgetnumcols(model.env, model.lp))
}

// AddVariable appends exactly one column to the model and returns its index.
// Bounds are only written when they differ from the native defaults, so a
// zero-value VarOptions results in a single native call.
func (model *Model) AddVariable(opts VarOptions) (int, error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.addVariable(opts, opts.Name)
}

// AddVariables is the batch form of AddVariable: it appends n columns
// sharing one set of options and returns the index of the last one. n must
// be at least 1; names, if given, must have length n.
func (model *Model) AddVariables(n int, opts VarOptions, names []string) (int, error) {
	if n < 1 {
		return 0, argumentErrorf("at least one column required, got %d", n)
	}
	if names != nil && len(names) != n {
		return 0, argumentErrorf("expected %d names, got %d", n, len(names))
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	index := -1
	for i := 0; i < n; i++ {
		name := ""
		if names != nil {
			name = names[i]
		}

		var err error
		if index, err = model.addVariable(opts, name); err != nil {
			return 0, err
		}
	}

	return index, nil
}

func (model *Model) addVariable(opts VarOptions, name string) (int, error) {
	vt, err := opts.kind()
	if err != nil {
		return 0, err
	}

	obj := C.double(opts.Obj)

	var cName **C.char
	if name != "" {
		arr := []*C.char{C.CString(name)}
		defer C.free(unsafe.Pointer(arr[0]))
		cName = &arr[0]
	}

	if status := C.CPXnewcols(model.env, model.lp, 1, &obj, nil, nil, nil, cName); status != 0 {
		return 0, translateCode(int(status))
	}

	index := int(C.CPXgetnumcols(model.env, model.lp)) - 1

	if opts.Lower != nil && *opts.Lower != 0 {
		if err := model.setBound(index, 'L', *opts.Lower); err != nil {
			return 0, err
		}
	}
	if opts.Upper != nil && !math.IsInf(*opts.Upper, 1) {
		if err := model.setBound(index, 'U', *opts.Upper); err != nil {
			return 0, err
		}
	}

	if vt != ContinuousVariable {
		if err := model.setVariableType(index, vt); err != nil {
			return 0, err
		}
	}

	return index, nil
}

// SetVariableType changes the kind of the given column. Setting a
// non-continuous kind on a pure LP promotes the problem to a MILP.
func (model *Model) SetVariableType(index int, vt VariableType) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.setVariableType(index, vt)
}

func (model *Model) setVariableType(index int, vt VariableType) error {
	ind := C.int(index)
	ct := C.char(vt)

	return translateCode(int(C.CPXchgctype(model.env, model.lp, 1, &ind, &ct)))
}

// VariableType returns the kind of the given column. On a pure LP, where no
// column type metadata exists natively, every column reports as continuous.
func (model *Model) VariableType(index int) (VariableType, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.variableType(index)
}

func (model *Model) variableType(index int) (VariableType, error) {
	var ct C.char

	status := C.CPXgetctype(model.env, model.lp, &ct, C.int(index), C.int(index))
	if int(status) == cpxerrNotMIP {
		return ContinuousVariable, nil
	}
	if err := translateCode(int(status)); err != nil {
		return 0, err
	}

	return VariableType(ct), nil
}

// IsBinary reports whether the given column is binary.
func (model *Model) IsBinary(index int) (bool, error) {
	vt, err := model.VariableType(index)
	return vt == BinaryVariable, err
}

// IsInteger reports whether the given column is integer.
func (model *Model) IsInteger(index int) (bool, error) {
	vt, err := model.VariableType(index)
	return vt == IntegerVariable, err
}

// IsContinuous reports whether the given column is continuous.
func (model *Model) IsContinuous(index int) (bool, error) {
	vt, err := model.VariableType(index)
	return vt == ContinuousVariable, err
}

// Bounds returns the lower and upper bound of the given column. An unbounded
// side reads back as the corresponding infinity.
func (model *Model) Bounds(index int) (lower, upper float64, err error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	var lb, ub C.double
	if status := C.CPXgetlb(model.env, model.lp, &lb, C.int(index), C.int(index)); status != 0 {
		return 0, 0, translateCode(int(status))
	}
	if status := C.CPXgetub(model.env, model.lp, &ub, C.int(index), C.int(index)); status != 0 {
		return 0, 0, translateCode(int(status))
	}

	return fromNative(lb), fromNative(ub), nil
}

// SetLowerBound sets the lower bound of the given column; math.Inf(-1)
// removes it.
func (model *Model) SetLowerBound(index int, bound float64) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.setBound(index, 'L', bound)
}

// SetUpperBound sets the upper bound of the given column; math.Inf(1)
// removes it.
func (model *Model) SetUpperBound(index int, bound float64) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.setBound(index, 'U', bound)
}

func (model *Model) setBound(index int, side C.char, bound float64) error {
	ind := C.int(index)
	lu := side
	bd := toNative(bound)

	return translateCode(int(C.CPXchgbds(model.env, model.lp, 1, &ind, &lu, &bd)))
}

// VariableName returns the name of the given column, or the empty string if
// it was created without one and the model carries no column names at all.
func (model *Model) VariableName(index int) (string, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return readName(func(name **C.char, store *C.char, space C.int, surplus *C.int) C.int {
		return C.CPXgetcolname(model.env, model.lp, name, store, space, surplus, C.int(index), C.int(index))
	})
}
