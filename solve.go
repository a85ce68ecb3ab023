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
	"context"
	"fmt"
	"math"
	"unsafe"
)

/* Types */

type SolveResult struct {
	model  *Model
	status SolveStatus
}

type SolveStatus int

const (
	// SolutionOptimal means the solve terminated with a proven optimum.
	SolutionOptimal SolveStatus = iota
	// SolutionIncumbent means the solve was interrupted (time limit, user
	// abort, any other early termination) but a primal-feasible incumbent is
	// available. Inspect BestBound and RelativeGap to judge its quality.
	SolutionIncumbent
)

/* Solving */

// Solve invokes the native solve entry point matching the problem kind (pure
// LP or MILP) and interprets the terminal status. Infeasible, unbounded and
// solution-less outcomes are returned as *SolverError; any other terminal
// status with a primal-feasible incumbent yields a usable result, so
// time-limited or interrupted runs still expose their best-known solution.
func (model *Model) Solve() (*SolveResult, error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.solve()
}

func (model *Model) solve() (*SolveResult, error) {
	var status C.int

	switch probType := C.CPXgetprobtype(model.env, model.lp); probType {
	case C.CPXPROB_LP:
		status = C.CPXlpopt(model.env, model.lp)
	case C.CPXPROB_MILP:
		status = C.CPXmipopt(model.env, model.lp)
	default:
		return nil, &SolverError{Msg: fmt.Sprintf("unsupported problem type %d", int(probType))}
	}
	if err := translateCode(int(status)); err != nil {
		return nil, err
	}

	res := &SolveResult{model: model}

	stat := C.CPXgetstat(model.env, model.lp)
	switch stat {
	case C.CPX_STAT_OPTIMAL, C.CPXMIP_OPTIMAL, C.CPXMIP_OPTIMAL_TOL:
		res.status = SolutionOptimal
		return res, nil
	case C.CPX_STAT_INFEASIBLE, C.CPXMIP_INFEASIBLE:
		return nil, &SolverError{Code: int(stat), Msg: "problem is infeasible"}
	case C.CPX_STAT_UNBOUNDED, C.CPXMIP_UNBOUNDED:
		return nil, &SolverError{Code: int(stat), Msg: "problem is unbounded"}
	case C.CPX_STAT_INForUNBD, C.CPXMIP_INForUNBD:
		return nil, &SolverError{Code: int(stat), Msg: "problem is infeasible or unbounded"}
	default:
		// time limit, user abort or any status not enumerated above: check
		// whether a primal-feasible solution of any kind is known
		var method, solnType, pFeas, dFeas C.int
		if status := C.CPXsolninfo(model.env, model.lp, &method, &solnType, &pFeas, &dFeas); status != 0 {
			return nil, translateCode(int(status))
		}
		if solnType == C.CPX_NO_SOLN || pFeas == 0 {
			return nil, &SolverError{Code: int(stat), Msg: "no feasible solution available"}
		}

		model.logger.Print("accepting incumbent solution for native solve status ", int(stat))
		res.status = SolutionIncumbent
		return res, nil
	}
}

// SolveWithContext wraps Solve with a context. If the context is cancelled
// or times out, the solution search is aborted; when the aborted run left no
// usable incumbent, the context error is returned. An incumbent found before
// the abort is returned as a SolutionIncumbent result.
func (model *Model) SolveWithContext(ctx context.Context) (*SolveResult, error) {
	terminate := (*C.int)(C.malloc(C.size_t(unsafe.Sizeof(C.int(0)))))
	if terminate == nil {
		return nil, &SolverError{Msg: "could not allocate termination flag"}
	}
	*terminate = 0

	model.mu.Lock()
	if status := C.CPXsetterminate(model.env, terminate); status != 0 {
		model.mu.Unlock()
		C.free(unsafe.Pointer(terminate))
		return nil, translateCode(int(status))
	}
	model.mu.Unlock()

	done := make(chan struct{})
	watcherExited := make(chan struct{})
	go func() {
		defer close(watcherExited)
		select {
		case <-ctx.Done():
			*terminate = 1
		case <-done:
		}
	}()

	res, err := model.Solve()

	// the watcher may still be about to write the flag, so it must have
	// exited before the flag is uninstalled and freed
	close(done)
	<-watcherExited

	model.mu.Lock()
	C.CPXsetterminate(model.env, nil)
	model.mu.Unlock()
	C.free(unsafe.Pointer(terminate))

	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return res, err
}

/* Post-solve queries */

// Status reports whether the solution is a proven optimum
// (SolutionOptimal) or an accepted incumbent (SolutionIncumbent)
func (res *SolveResult) Status() SolveStatus {
	return res.status
}

// ObjectiveValue returns the objective value of the solution, including the
// adapter-held constant term.
func (res *SolveResult) ObjectiveValue() (float64, error) {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	var val C.double
	if status := C.CPXgetobjval(res.model.env, res.model.lp, &val); status != 0 {
		return 0, translateCode(int(status))
	}

	return float64(val) + res.model.objConstant, nil
}

// BestBound returns the best known bound on the objective value, including
// the adapter-held constant term.
func (res *SolveResult) BestBound() (float64, error) {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	var val C.double
	if status := C.CPXgetbestobjval(res.model.env, res.model.lp, &val); status != 0 {
		return 0, translateCode(int(status))
	}

	return float64(val) + res.model.objConstant, nil
}

// RelativeGap returns the relative gap between the incumbent objective and
// the best known bound.
func (res *SolveResult) RelativeGap() (float64, error) {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	var gap C.double
	if status := C.CPXgetmiprelgap(res.model.env, res.model.lp, &gap); status != 0 {
		return 0, translateCode(int(status))
	}

	return float64(gap), nil
}

// Value returns the computed value of the given column for this result.
// Values of non-continuous columns are rounded to the nearest integer.
func (res *SolveResult) Value(index int) (float64, error) {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	var x C.double
	if status := C.CPXgetx(res.model.env, res.model.lp, &x, C.int(index), C.int(index)); status != 0 {
		return 0, translateCode(int(status))
	}

	vt, err := res.model.variableType(index)
	if err != nil {
		return 0, err
	}
	if vt != ContinuousVariable {
		return math.Round(float64(x)), nil
	}

	return float64(x), nil
}
