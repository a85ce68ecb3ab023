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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterTypes(t *testing.T) {
	model := newTestModel(t, Minimize)

	require.NoError(t, model.SetParameter("CPX_PARAM_THREADS", 2))
	threads, err := model.Parameter("CPX_PARAM_THREADS")
	require.NoError(t, err)
	assert.Equal(t, 2, threads)

	require.NoError(t, model.SetParameter("CPX_PARAM_EPGAP", 0.25))
	gap, err := model.Parameter("CPX_PARAM_EPGAP")
	require.NoError(t, err)
	assert.Equal(t, 0.25, gap)

	require.NoError(t, model.SetParameter("CPX_PARAM_ITLIM", int64(12345)))
	itlim, err := model.Parameter("CPX_PARAM_ITLIM")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), itlim)

	// writes coerce the given value to the parameter's native type
	require.NoError(t, model.SetParameter("CPX_PARAM_THREADS", 1.0))
	threads, err = model.Parameter("CPX_PARAM_THREADS")
	require.NoError(t, err)
	assert.Equal(t, 1, threads)
}

func TestParameterTimeLimitAlias(t *testing.T) {
	model := newTestModel(t, Minimize)

	require.NoError(t, model.SetParameter("timelimit", 60.0))

	limit, err := model.Parameter("CPX_PARAM_TILIM")
	require.NoError(t, err)
	assert.Equal(t, 60.0, limit)

	limit, err = model.Parameter("timelimit")
	require.NoError(t, err)
	assert.Equal(t, 60.0, limit)
}

func TestParameterUnknownName(t *testing.T) {
	model := newTestModel(t, Minimize)

	var unknownErr *UnknownParameterError
	require.ErrorAs(t, model.SetParameter("no such parameter", 1), &unknownErr)
	assert.Equal(t, "no such parameter", unknownErr.Name)

	_, err := model.Parameter("no such parameter")
	require.ErrorAs(t, err, &unknownErr)
}

func TestParameterLogFile(t *testing.T) {
	model := newTestModel(t, Minimize)

	// unset by default
	path, err := model.Parameter("logfile")
	require.NoError(t, err)
	assert.Equal(t, "", path)

	logPath := filepath.Join(t.TempDir(), "solver.log")
	require.NoError(t, model.SetParameter("logfile", logPath))

	path, err = model.Parameter("logfile")
	require.NoError(t, err)
	assert.Equal(t, logPath, path)

	// the empty string closes and disables logging again
	require.NoError(t, model.SetParameter("logfile", ""))
	path, err = model.Parameter("logfile")
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestParameterTypeMismatch(t *testing.T) {
	model := newTestModel(t, Minimize)

	var argErr *ArgumentError
	require.ErrorAs(t, model.SetParameter("CPX_PARAM_THREADS", "many"), &argErr)
	require.ErrorAs(t, model.SetParameter("logfile", 42), &argErr)
}
