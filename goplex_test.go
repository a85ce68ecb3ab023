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

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	delta = 0.0000001 // acceptable numerical deviation for test results
)

func newTestModel(t *testing.T, dir direction) *Model {
	t.Helper()

	model, err := NewModel(t.Name(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { model.Close() })

	return model
}

func TestInstantiation(t *testing.T) {
	name := "test model 1"
	model, err := NewModel(name, Maximize)
	require.NoError(t, err)
	defer model.Close()

	assert.Equal(t, name, model.Name())
	assert.Equal(t, Maximize, model.Direction())
	assert.True(t, model.IsMaximize())
	assert.Equal(t, 0, model.VariableCount())
	assert.Equal(t, 0, model.ConstraintCount())
}

func TestClose(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	require.NoError(t, model.Close())
	// second Close must be a no-op
	require.NoError(t, model.Close())
}

func TestAddVariable(t *testing.T) {
	model := newTestModel(t, Maximize)

	i, err := model.AddVariable(VarOptions{Name: "x", Obj: 3.1416})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, model.VariableCount())

	name, err := model.VariableName(i)
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	coef, err := model.ObjectiveCoefficient(i)
	require.NoError(t, err)
	assert.Equal(t, 3.1416, coef)

	// native defaults: lower 0, no upper bound
	lower, upper, err := model.Bounds(i)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lower)
	assert.True(t, math.IsInf(upper, 1))

	j, err := model.AddVariable(VarOptions{Name: "y"})
	require.NoError(t, err)
	assert.Equal(t, 1, j)
}

func TestAddVariableKinds(t *testing.T) {
	model := newTestModel(t, Maximize)

	// more than one explicit kind is a contract violation
	_, err := model.AddVariable(VarOptions{Binary: true, Integer: true})
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)

	_, err = model.AddVariable(VarOptions{Binary: true, Continuous: true, Integer: true})
	require.ErrorAs(t, err, &argErr)

	// no explicit kind defaults to continuous
	i, err := model.AddVariable(VarOptions{})
	require.NoError(t, err)

	continuous, err := model.IsContinuous(i)
	require.NoError(t, err)
	assert.True(t, continuous)

	binary, err := model.IsBinary(i)
	require.NoError(t, err)
	assert.False(t, binary)

	integer, err := model.IsInteger(i)
	require.NoError(t, err)
	assert.False(t, integer)

	j, err := model.AddVariable(VarOptions{Integer: true})
	require.NoError(t, err)

	integer, err = model.IsInteger(j)
	require.NoError(t, err)
	assert.True(t, integer)

	require.NoError(t, model.SetVariableType(j, BinaryVariable))
	binary, err = model.IsBinary(j)
	require.NoError(t, err)
	assert.True(t, binary)
}

func TestAddVariables(t *testing.T) {
	model := newTestModel(t, Minimize)

	last, err := model.AddVariables(3, VarOptions{Obj: 1}, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, last)
	assert.Equal(t, 3, model.VariableCount())

	name, err := model.VariableName(1)
	require.NoError(t, err)
	assert.Equal(t, "b", name)

	_, err = model.AddVariables(2, VarOptions{}, []string{"only one"})
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)

	// the "index of the last column" contract needs at least one column
	_, err = model.AddVariables(0, VarOptions{}, nil)
	require.ErrorAs(t, err, &argErr)
}

func TestVariableBoundSentinelRoundTrip(t *testing.T) {
	model := newTestModel(t, Maximize)

	i, err := model.AddVariable(VarOptions{})
	require.NoError(t, err)

	require.NoError(t, model.SetUpperBound(i, 5.5))
	_, upper, err := model.Bounds(i)
	require.NoError(t, err)
	assert.Equal(t, 5.5, upper)

	require.NoError(t, model.SetUpperBound(i, math.Inf(1)))
	_, upper, err = model.Bounds(i)
	require.NoError(t, err)
	assert.True(t, math.IsInf(upper, 1))

	require.NoError(t, model.SetLowerBound(i, math.Inf(-1)))
	lower, _, err := model.Bounds(i)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lower, -1))

	require.NoError(t, model.SetLowerBound(i, -2.25))
	lower, _, err = model.Bounds(i)
	require.NoError(t, err)
	assert.Equal(t, -2.25, lower)
}

func TestExplicitBoundsAtCreation(t *testing.T) {
	model := newTestModel(t, Maximize)

	lower, upper := -1.5, 7.0
	i, err := model.AddVariable(VarOptions{Lower: &lower, Upper: &upper})
	require.NoError(t, err)

	l, u, err := model.Bounds(i)
	require.NoError(t, err)
	assert.Equal(t, lower, l)
	assert.Equal(t, upper, u)
}

func TestRowBoundsRoundTrip(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariables(2, VarOptions{}, nil)
	require.NoError(t, err)

	indices := []int{0, 1}
	values := []float64{1, 2}

	for _, tc := range []struct {
		name         string
		lower, upper float64
	}{
		{"less-equal", math.Inf(-1), 3},
		{"greater-equal", 1, math.Inf(1)},
		{"equal", 4, 4},
		{"range", 2, 5},
	} {
		row, err := model.AddConstraint(indices, values, tc.lower, tc.upper, tc.name)
		require.NoError(t, err)

		lower, upper, err := model.RowBounds(row)
		require.NoError(t, err)
		assert.Equal(t, tc.lower, lower, tc.name)
		assert.Equal(t, tc.upper, upper, tc.name)

		name, err := model.ConstraintName(row)
		require.NoError(t, err)
		assert.Equal(t, tc.name, name)
	}
}

func TestAddConstraintValidation(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariable(VarOptions{})
	require.NoError(t, err)

	var argErr *ArgumentError

	_, err = model.AddConstraint([]int{0}, []float64{1}, math.Inf(-1), math.Inf(1), "")
	require.ErrorAs(t, err, &argErr)

	_, err = model.AddConstraint([]int{0}, []float64{1}, 5, 2, "")
	require.ErrorAs(t, err, &argErr)

	_, err = model.AddConstraint([]int{0, 1}, []float64{1}, 0, 1, "")
	require.ErrorAs(t, err, &argErr)

	err = model.AddConstraints(2, 0, math.Inf(1), []string{"only one"})
	require.ErrorAs(t, err, &argErr)
}

func TestAddConstraintsBulk(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariables(2, VarOptions{}, nil)
	require.NoError(t, err)

	require.NoError(t, model.AddConstraints(3, 0, 10, []string{"r0", "r1", "r2"}))
	assert.Equal(t, 3, model.ConstraintCount())

	for i := 0; i < 3; i++ {
		lower, upper, err := model.RowBounds(i)
		require.NoError(t, err)
		assert.Equal(t, 0.0, lower)
		assert.Equal(t, 10.0, upper)

		// bulk rows start out empty
		indices, values, err := model.Row(i)
		require.NoError(t, err)
		assert.Empty(t, indices)
		assert.Empty(t, values)
	}

	name, err := model.ConstraintName(2)
	require.NoError(t, err)
	assert.Equal(t, "r2", name)
}

func TestRowSparseEntries(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariables(4, VarOptions{}, nil)
	require.NoError(t, err)

	row, err := model.AddConstraint([]int{3, 0}, []float64{4.5, 1.5}, 0, 1, "")
	require.NoError(t, err)

	indices, values, err := model.Row(row)
	require.NoError(t, err)
	// entries come back ordered by variable index
	assert.Equal(t, []int{0, 3}, indices)
	assert.Equal(t, []float64{1.5, 4.5}, values)
}

func TestRemoveConstraintShiftsIndices(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariables(3, VarOptions{}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := model.AddConstraint([]int{i}, []float64{float64(i + 1)}, 0, float64(i+1), "")
		require.NoError(t, err)
	}

	wantIndices, wantValues, err := model.Row(2)
	require.NoError(t, err)

	require.NoError(t, model.RemoveConstraint(1))
	assert.Equal(t, 2, model.ConstraintCount())

	gotIndices, gotValues, err := model.Row(1)
	require.NoError(t, err)
	assert.Equal(t, wantIndices, gotIndices)
	assert.Equal(t, wantValues, gotValues)
}

func TestAddColumn(t *testing.T) {
	model := newTestModel(t, Maximize)

	require.NoError(t, model.AddConstraints(2, 0, math.Inf(1), nil))

	i, err := model.AddColumn([]int{0, 1}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, model.VariableCount())

	indices, values, err := model.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, indices)
	assert.Equal(t, []float64{2}, values)

	_, err = model.AddColumn([]int{0}, []float64{1, 2})
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestSetObjectiveCoefficients(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariables(3, VarOptions{}, nil)
	require.NoError(t, err)

	var argErr *ArgumentError
	require.ErrorAs(t, model.SetObjectiveCoefficients([]float64{1, 2}), &argErr)

	coefs := []float64{1.3, 2.7182, 3.1416}
	require.NoError(t, model.SetObjectiveCoefficients(coefs))

	for i, want := range coefs {
		got, err := model.ObjectiveCoefficient(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestClone(t *testing.T) {
	model := newTestModel(t, Maximize)

	upper := 3.0
	_, err := model.AddVariable(VarOptions{Name: "x", Obj: 1, Upper: &upper})
	require.NoError(t, err)
	_, err = model.AddConstraint([]int{0}, []float64{1}, 0, 1, "c")
	require.NoError(t, err)
	model.SetObjectiveConstant(2)

	clone, err := model.Clone()
	require.NoError(t, err)
	defer clone.Close()

	assert.Equal(t, model.Name(), clone.Name())
	assert.Equal(t, model.Direction(), clone.Direction())
	assert.Equal(t, model.VariableCount(), clone.VariableCount())
	assert.Equal(t, model.ConstraintCount(), clone.ConstraintCount())
	assert.Equal(t, model.ObjectiveConstant(), clone.ObjectiveConstant())

	// the clone has its own native lifetime: mutating it must not leak
	// through to the original
	require.NoError(t, clone.SetUpperBound(0, 99))
	_, u, err := model.Bounds(0)
	require.NoError(t, err)
	assert.Equal(t, upper, u)

	lower, upperRow, err := model.RowBounds(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 1.0, upperRow)
}

func TestCloneCarriesLogFile(t *testing.T) {
	model := newTestModel(t, Maximize)

	logPath := filepath.Join(t.TempDir(), "solver.log")
	require.NoError(t, model.SetParameter("logfile", logPath))

	clone, err := model.Clone()
	require.NoError(t, err)
	defer clone.Close()

	path, err := clone.Parameter("logfile")
	require.NoError(t, err)
	assert.Equal(t, logPath, path)
}

func TestWriteModel(t *testing.T) {
	model := newTestModel(t, Maximize)

	_, err := model.AddVariable(VarOptions{Name: "x", Obj: 1})
	require.NoError(t, err)
	_, err = model.AddConstraint([]int{0}, []float64{1}, math.Inf(-1), 1, "c")
	require.NoError(t, err)

	for _, format := range []Format{FormatLP, FormatMPS} {
		path := filepath.Join(t.TempDir(), "model."+string(format))
		require.NoError(t, model.WriteModel(path, format))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	var argErr *ArgumentError
	require.ErrorAs(t, model.WriteModel("model.xyz", Format("XYZ")), &argErr)
}
