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
import "C"

/* Objective-related functions */

// SetObjectiveCoefficients overwrites every objective coefficient
// positionally. The slice length must equal the current variable count.
func (model *Model) SetObjectiveCoefficients(coefs []float64) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	count := int(C.CPXgetnumcols(model.env, model.lp))
	if len(coefs) != count {
		return argumentErrorf("expected %d objective coefficients, got %d", count, len(coefs))
	}
	if count == 0 {
		return nil
	}

	indices := make([]C.int, count)
	values := make([]C.double, count)
	for i, coef := range coefs {
		indices[i] = C.int(i)
		values[i] = C.double(coef)
	}

	return translateCode(int(C.CPXchgobj(model.env, model.lp, C.int(count), &indices[0], &values[0])))
}

// ObjectiveCoefficient returns the objective coefficient of the given
// column.
func (model *Model) ObjectiveCoefficient(index int) (float64, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	var obj C.double
	if status := C.CPXgetobj(model.env, model.lp, &obj, C.int(index), C.int(index)); status != 0 {
		return 0, translateCode(int(status))
	}

	return float64(obj), nil
}

// SetObjectiveCoefficient sets the objective coefficient of the given
// column.
func (model *Model) SetObjectiveCoefficient(index int, coef float64) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	ind := C.int(index)
	val := C.double(coef)

	return translateCode(int(C.CPXchgobj(model.env, model.lp, 1, &ind, &val)))
}

// SetObjectiveConstant sets a constant term added to every reported
// objective value. It lives only in the adapter: the native objective row
// never sees it.
func (model *Model) SetObjectiveConstant(constant float64) {
	model.mu.Lock()
	defer model.mu.Unlock()

	model.objConstant = constant
}

// ObjectiveConstant returns the adapter-held objective constant term.
func (model *Model) ObjectiveConstant() float64 {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.objConstant
}

// IsMaximize reports whether the model's optimization direction is Maximize.
func (model *Model) IsMaximize() bool {
	return model.Direction() == Maximize
}
