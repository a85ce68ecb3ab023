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

import "unsafe"

type Format string

const (
	FormatLP  = Format("LP")
	FormatMPS = Format("MPS")
)

// WriteModel writes the model to a file in the given format. The file
// contents are produced entirely by the native writer.
func (model *Model) WriteModel(filename string, format Format) error {
	switch format {
	case FormatLP, FormatMPS:
	default:
		return argumentErrorf("unsupported file format %q", string(format))
	}

	model.mu.RLock()
	defer model.mu.RUnlock()

	cFile := C.CString(filename)
	defer C.free(unsafe.Pointer(cFile))
	cType := C.CString(string(format))
	defer C.free(unsafe.Pointer(cType))

	return translateCode(int(C.CPXwriteprob(model.env, model.lp, cFile, cType)))
}
