package main

import (
	"fmt"
	"log"
	"math"

	"github.com/costela/goplex"
)

func main() {
	// Maximize: 2 x0 + 5 x1
	// Subject to: x0 + 2 x1 <= 3, x0, x1 >= 0
	model, err := goplex.NewModel("example", goplex.Maximize)
	if err != nil {
		log.Fatal(err)
	}
	defer model.Close()

	x0, err := model.AddVariable(goplex.VarOptions{Name: "x0", Obj: 2})
	if err != nil {
		log.Fatal(err)
	}
	x1, err := model.AddVariable(goplex.VarOptions{Name: "x1", Obj: 5})
	if err != nil {
		log.Fatal(err)
	}

	if _, err := model.AddConstraint([]int{x0, x1}, []float64{1, 2}, math.Inf(-1), 3, "c0"); err != nil {
		log.Fatal(err)
	}

	res, err := model.Solve()
	if err != nil {
		log.Fatal(err)
	}

	obj, _ := res.ObjectiveValue()
	v0, _ := res.Value(x0)
	v1, _ := res.Value(x1)

	fmt.Printf("solution optimal? %t\n", res.Status() == goplex.SolutionOptimal)
	fmt.Printf("objective = %.2f\n", obj)
	fmt.Printf("x0 = %.2f, x1 = %.2f\n", v0, v1)
}
