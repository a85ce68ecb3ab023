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

/*

GoPLEX is a thin adapter for modelling and solving linear and mixed-integer
programming problems with the IBM CPLEX callable library.

As an example of the API, the model of the following problem:

    Maximize:
      z = 2 x0 + 5 x1
    Subject to:
      x0 + 2 x1 <= 3
    With:
      x0, x1 >= 0

can be expressed with GoPLEX like this:

	package main

	import (
		"fmt"

		"github.com/costela/goplex"
	)

	func main() {
		model, _ := goplex.NewModel("some model", goplex.Maximize)
		defer model.Close()

		x0, _ := model.AddVariable(goplex.VarOptions{Obj: 2})
		x1, _ := model.AddVariable(goplex.VarOptions{Obj: 5})

		model.AddConstraint([]int{x0, x1}, []float64{1, 2}, goplex.NoBound, 3, "c0")

		// ⋮
		// The model can then be solved and the resulting values retrieved:
		// ⋮

		res, _ := model.Solve() // you should check for errors

		obj, _ := res.ObjectiveValue()
		v0, _ := res.Value(x0)
		fmt.Printf("solution optimal? %t\n", res.Status() == goplex.SolutionOptimal)
		fmt.Printf("z = %f\n", obj)
		fmt.Printf("x0 = %f\n", v0)
	}

Variable and constraint indices are dense and 0-based, assigned in creation
order. Removing a constraint shifts all subsequent row indices down by one.
Bounds use math.Inf to express "no bound"; the native sentinel magnitude never
crosses this package's boundary.
*/
package goplex

// #cgo CFLAGS: -I/opt/ibm/ILOG/CPLEX_Studio/cplex/include
// #cgo linux LDFLAGS: -L/opt/ibm/ILOG/CPLEX_Studio/cplex/lib/x86-64_linux/static_pic -lcplex -lm -lpthread -ldl
// #cgo darwin LDFLAGS: -L/opt/ibm/ILOG/CPLEX_Studio/cplex/lib/x86-64_osx/static_pic -lcplex -lm -lpthread -ldl
// #include <ilcplex/cplex.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"unsafe"
)

/* Types */

// Model owns one CPLEX environment and the single problem object living
// inside it. All mutation and solving goes through its methods; the native
// handles are never exposed.
type Model struct {
	mu          sync.RWMutex
	env         C.CPXENVptr
	lp          C.CPXLPptr
	objConstant float64
	logPath     string
	logger      Logger
}

type direction C.int

const (
	Minimize = direction(C.CPX_MIN)
	Maximize = direction(C.CPX_MAX)
)

// NoBound can be passed wherever a constraint or variable bound is expected
// to state that the respective side is unbounded. The sign is inferred from
// the side it is used on.
var NoBound = math.Inf(1)

/* Model related functions */

// NewModel opens a fresh CPLEX environment and creates an empty problem
// inside it, providing a name (purely informational) and an optimization
// direction (either Minimize or Maximize). If the problem cannot be created,
// the environment open is rolled back before returning.
func NewModel(name string, dir direction, opts ...Option) (*Model, error) {
	var status C.int

	env := C.CPXopenCPLEX(&status)
	if env == nil {
		if err := translateCode(int(status)); err != nil {
			return nil, fmt.Errorf("opening CPLEX environment: %w", err)
		}
		return nil, &SolverError{Msg: "could not open CPLEX environment"}
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	lp := C.CPXcreateprob(env, &status, cName)
	if lp == nil {
		err := translateCode(int(status))
		C.CPXcloseCPLEX(&env)
		if err == nil {
			err = &SolverError{Msg: "could not create CPLEX problem"}
		}
		return nil, fmt.Errorf("creating CPLEX problem: %w", err)
	}

	model := &Model{
		env:    env,
		lp:     lp,
		logger: noopLogger{},
	}

	C.CPXchgobjsen(env, lp, C.int(dir))

	for _, opt := range opts {
		if err := opt(model); err != nil {
			model.close()
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	// plug the underlying C library's destructors to the instance of Model,
	// otherwise we get a memory-leak of the underlying structs
	runtime.SetFinalizer(model, finalizeModel)

	return model, nil
}

// finalizeModel is the function registered to be called upon garbage-
// collection of the model value
func finalizeModel(model *Model) {
	if err := model.Close(); err != nil {
		model.logger.Print("error releasing CPLEX handles: ", err)
	}
}

// Close releases the native problem and then the environment, in that order.
// Each step is attempted even if the other fails. Close is safe to call more
// than once; only the first call releases anything.
func (model *Model) Close() error {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.close()
}

func (model *Model) close() error {
	var probErr, envErr error

	if model.lp != nil {
		if status := C.CPXfreeprob(model.env, &model.lp); status != 0 {
			probErr = translateCode(int(status))
		}
		model.lp = nil
	}
	if model.env != nil {
		if status := C.CPXcloseCPLEX(&model.env); status != 0 {
			envErr = translateCode(int(status))
		}
		model.env = nil
	}

	runtime.SetFinalizer(model, nil)

	if probErr != nil {
		if envErr != nil {
			model.logger.Print("also failed to close CPLEX environment: ", envErr)
		}
		return probErr
	}
	return envErr
}

// Clone returns a fully independent copy of the model, with its own native
// environment and problem and therefore its own lifetime. The adapter-side
// objective constant, logger and log file path carry over; both environments
// then append to the same log file.
func (model *Model) Clone() (*Model, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	clone, err := NewModel(model.name(), model.direction(), WithLogger(model.logger))
	if err != nil {
		return nil, fmt.Errorf("creating clone environment: %w", err)
	}

	var status C.int
	lp := C.CPXcloneprob(clone.env, model.lp, &status)
	if lp == nil {
		clone.Close()
		if err := translateCode(int(status)); err != nil {
			return nil, fmt.Errorf("cloning CPLEX problem: %w", err)
		}
		return nil, &SolverError{Msg: "could not clone CPLEX problem"}
	}

	C.CPXfreeprob(clone.env, &clone.lp)
	clone.lp = lp
	clone.objConstant = model.objConstant

	if model.logPath != "" {
		if err := clone.setLogFile(model.logPath); err != nil {
			clone.Close()
			return nil, fmt.Errorf("carrying log file to clone: %w", err)
		}
	}

	return clone, nil
}

// Name returns the name provided upon instantiation of a model
func (model *Model) Name() string {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.name()
}

func (model *Model) name() string {
	var surplus C.int

	status := C.CPXgetprobname(model.env, model.lp, nil, 0, &surplus)
	if int(status) != cpxerrNegativeSurplus || surplus == 0 {
		return ""
	}

	buf := make([]C.char, -surplus)
	if C.CPXgetprobname(model.env, model.lp, &buf[0], C.int(len(buf)), &surplus) != 0 {
		return ""
	}

	return C.GoString(&buf[0])
}

// SetDirection changes the direction of the model's optimization
func (model *Model) SetDirection(dir direction) {
	model.mu.Lock()
	defer model.mu.Unlock()

	C.CPXchgobjsen(model.env, model.lp, C.int(dir))
}

// Direction returns the model's current optimization direction
func (model *Model) Direction() direction {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.direction()
}

func (model *Model) direction() direction {
	return direction(C.CPXgetobjsen(model.env, model.lp))
}

/* Bound sentinel conversion */

// toNative converts an adapter-side bound to the native representation,
// replacing infinities with the CPX_INFBOUND sentinel magnitude.
func toNative(bound float64) C.double {
	if math.IsInf(bound, 1) {
		return C.CPX_INFBOUND
	}
	if math.IsInf(bound, -1) {
		return -C.CPX_INFBOUND
	}
	return C.double(bound)
}

// fromNative is the inverse of toNative: any magnitude at or beyond the
// sentinel reads back as the corresponding infinity.
func fromNative(bound C.double) float64 {
	if bound >= C.CPX_INFBOUND {
		return math.Inf(1)
	}
	if bound <= -C.CPX_INFBOUND {
		return math.Inf(-1)
	}
	return float64(bound)
}

// readName runs the usual two-phase surplus query against one of the native
// name accessors. query is called once with a zero-sized store to size the
// buffer and a second time to fill it.
func readName(query func(name **C.char, store *C.char, space C.int, surplus *C.int) C.int) (string, error) {
	var surplus C.int

	status := query(nil, nil, 0, &surplus)
	if int(status) == cpxerrNoNames {
		return "", nil
	}
	if status != 0 && int(status) != cpxerrNegativeSurplus {
		return "", translateCode(int(status))
	}
	if surplus == 0 {
		return "", nil
	}

	store := make([]C.char, -surplus)
	name := make([]*C.char, 1)
	if status := query(&name[0], &store[0], C.int(len(store)), &surplus); status != 0 {
		return "", translateCode(int(status))
	}

	return C.GoString(name[0]), nil
}

// cStrings converts a Go string slice into a C array of char pointers.
// The returned release function frees every element.
func cStrings(names []string) (**C.char, func()) {
	if len(names) == 0 {
		return nil, func() {}
	}

	arr := make([]*C.char, len(names))
	for i, name := range names {
		arr[i] = C.CString(name)
	}

	return &arr[0], func() {
		for _, p := range arr {
			C.free(unsafe.Pointer(p))
		}
	}
}
