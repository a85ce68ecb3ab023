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
	"unsafe"
)

type paramType int

const (
	paramNone paramType = iota
	paramInt
	paramDouble
	paramString
	paramLong
)

type paramInfo struct {
	id  int
	typ paramType
}

// logFileParam is tracked by the adapter itself: the native API can set a
// log file but does not expose the current path as a readable parameter.
const logFileParam = "logfile"

// timeLimitParam is a convenience alias for the canonical time-limit name.
const timeLimitParam = "timelimit"

// SetParameter sets a solver parameter by name, coercing value to the
// parameter's native type. Setting "logfile" to the empty string closes and
// disables logging; setting it to a path opens append-mode logging there.
func (model *Model) SetParameter(name string, value interface{}) error {
	model.mu.Lock()
	defer model.mu.Unlock()

	if name == logFileParam {
		path, ok := value.(string)
		if !ok {
			return argumentErrorf("logfile expects a string path, got %T", value)
		}
		return model.setLogFile(path)
	}
	if name == timeLimitParam {
		name = "CPX_PARAM_TILIM"
	}

	info, ok := parameters[name]
	if !ok {
		return &UnknownParameterError{Name: name}
	}

	switch info.typ {
	case paramInt:
		v, err := toIntValue(value)
		if err != nil {
			return err
		}
		return translateCode(int(C.CPXsetintparam(model.env, C.int(info.id), C.CPXINT(v))))
	case paramDouble:
		v, err := toFloatValue(value)
		if err != nil {
			return err
		}
		return translateCode(int(C.CPXsetdblparam(model.env, C.int(info.id), C.double(v))))
	case paramString:
		v, ok := value.(string)
		if !ok {
			return argumentErrorf("parameter %q expects a string, got %T", name, value)
		}
		cVal := C.CString(v)
		defer C.free(unsafe.Pointer(cVal))
		return translateCode(int(C.CPXsetstrparam(model.env, C.int(info.id), cVal)))
	case paramLong:
		v, err := toIntValue(value)
		if err != nil {
			return err
		}
		return translateCode(int(C.CPXsetlongparam(model.env, C.int(info.id), C.CPXLONG(v))))
	default:
		return argumentErrorf("parameter %q cannot be set", name)
	}
}

// Parameter returns the current value of a solver parameter, typed per the
// parameter's native type tag. "logfile" returns the last path set, or the
// empty string.
func (model *Model) Parameter(name string) (interface{}, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	if name == logFileParam {
		return model.logPath, nil
	}
	if name == timeLimitParam {
		name = "CPX_PARAM_TILIM"
	}

	info, ok := parameters[name]
	if !ok {
		return nil, &UnknownParameterError{Name: name}
	}

	switch info.typ {
	case paramInt:
		var v C.CPXINT
		if status := C.CPXgetintparam(model.env, C.int(info.id), &v); status != 0 {
			return nil, translateCode(int(status))
		}
		return int(v), nil
	case paramDouble:
		var v C.double
		if status := C.CPXgetdblparam(model.env, C.int(info.id), &v); status != 0 {
			return nil, translateCode(int(status))
		}
		return float64(v), nil
	case paramString:
		buf := make([]C.char, C.CPX_STR_PARAM_MAX)
		if status := C.CPXgetstrparam(model.env, C.int(info.id), &buf[0]); status != 0 {
			return nil, translateCode(int(status))
		}
		return C.GoString(&buf[0]), nil
	case paramLong:
		var v C.CPXLONG
		if status := C.CPXgetlongparam(model.env, C.int(info.id), &v); status != 0 {
			return nil, translateCode(int(status))
		}
		return int64(v), nil
	default:
		return nil, argumentErrorf("parameter %q cannot be read", name)
	}
}

func (model *Model) setLogFile(path string) error {
	if path == "" {
		if status := C.CPXsetlogfilename(model.env, nil, nil); status != 0 {
			return translateCode(int(status))
		}
		model.logPath = ""
		return nil
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	cMode := C.CString("a")
	defer C.free(unsafe.Pointer(cMode))

	if status := C.CPXsetlogfilename(model.env, cPath, cMode); status != 0 {
		return translateCode(int(status))
	}
	model.logPath = path

	return nil
}

func toIntValue(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, argumentErrorf("expected an integer value, got %T", value)
	}
}

func toFloatValue(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, argumentErrorf("expected a numeric value, got %T", value)
	}
}
