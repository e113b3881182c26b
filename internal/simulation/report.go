package simulation

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mitchelldurbincs/PropertyTradingSim/internal/game/core"
)

// WriteReport prints the batch summary: timeouts, average rounds and the win
// rate of each kind in the given order.
func WriteReport(w io.Writer, results *Results, kinds []core.StrategyKind) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d games finished by timeout (out of %d)\n", results.TimeoutCount(), results.Count())
	fmt.Fprintf(bw, "Average round number: %.1f\n", results.AverageRounds())
	fmt.Fprintln(bw, "Victory rate by player behaviour: ")
	for _, kind := range kinds {
		fmt.Fprintf(bw, "%s: %.1f%%\n", kind.Label(), results.WinRate(kind)*100)
	}

	return bw.Flush()
}
