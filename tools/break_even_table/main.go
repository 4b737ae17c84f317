package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	calc "github.com/sparplan/savings-calculator/internal/calculation"
	"github.com/sparplan/savings-calculator/internal/config"
)

const usageLine = "usage: break_even_table <config-file> <start> <end> <step>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run prints the table and returns the exit status: 2 for a bad
// invocation, 1 when the plan file cannot be loaded.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 4 {
		fmt.Fprintln(stderr, usageLine)
		return 2
	}
	bounds := make([]decimal.Decimal, 3)
	for i, name := range []string{"start", "end", "step"} {
		d, err := decimal.NewFromString(args[i+1])
		if err != nil {
			fmt.Fprintf(stderr, "invalid %s %q\n%s\n", name, args[i+1], usageLine)
			return 2
		}
		bounds[i] = d
	}
	start, end, step := bounds[0], bounds[1], bounds[2]
	if !step.IsPositive() {
		fmt.Fprintf(stderr, "step must be positive\n%s\n", usageLine)
		return 2
	}

	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	plan := calc.NewSavingsPlanFromInput(calc.NewSavingsCalculator(), cfg.PlanInput())

	// Header
	fmt.Fprintln(stdout, "Index,NominalDeposit,NetDeposit,BreakEvenContribution")

	// Iterate deposits and print derived values
	idx := 0
	for deposit := start; deposit.LessThanOrEqual(end); deposit = deposit.Add(step) {
		plan.SetNominalDeposit(deposit)
		r := plan.Result()
		fmt.Fprintf(stdout, "%d,%s,%s,%s\n", idx, deposit.String(), r.NetPeriodicDeposit.String(), r.BreakEvenContribution.String())
		idx++
	}
	return 0
}
