// perft is a movegen sanity/benchmarking tool for the Arimaa core. It runs
// TotalMoves' closed-form bound, then counts perft-style node totals for each
// step depth (one sub-move per level) from either the standard opening or a
// caller-supplied opening, the same
// role cmd/perft plays for a chess engine's board package. See:
// https://www.chessprogramming.org/Perft_Results for the general technique.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/arimaa-go/pkg/arimaa"
	"github.com/herohde/arimaa-go/pkg/arimaa/notation"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth   = flag.Int("depth", 2, "Step (sub-move) depth")
	opening = flag.String("opening", "", "Opening placements text (2 lines); defaults to the standard opening")
	seed    = flag.Int64("seed", arimaa.DefaultZobristSeed, "Zobrist table seed")
	divide  = flag.Bool("divide", false, "Print per-step node counts at the final depth")
)

// running guards against re-entrant invocation of search from a single
// process, mirroring uci.Driver.active: this binary is single-shot, but the
// flag keeps the guard idiom consistent with the rest of the stack.
var running atomic.Bool

const standardOpening = "Ra1 Db1 Rc1 Rd1 De1 Rf1 Cg1 Rh1 Ra2 Hb2 Cc2 Ed2 Me2 Rf2 Hg2 Rh2\n" +
	"ha7 mb7 cc7 dd7 ee7 cf7 hg7 rh7 ra8 rb8 rc8 rd8 de8 rf8 rg8 rh8"

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "arimaa perft %v", version)

	total := arimaa.TotalMoves()
	logw.Infof(ctx, "TotalMoves sanity bound: %v (expect 512 < n < 1569)", total)

	text := *opening
	if text == "" {
		text = standardOpening
	}

	zt := arimaa.NewZobristTable(*seed)
	pos, err := notation.FromOpeningText(text, zt)
	if err != nil {
		logw.Exitf(ctx, "invalid opening: %v", err)
	}

	if !running.CompareAndSwap(false, true) {
		logw.Exitf(ctx, "perft already running")
	}
	defer running.Store(false)

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := search(pos, d, *divide && d == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", d, nodes, duration.Microseconds())
	}
}

// search explores every legal step d sub-moves deep and counts the turns
// (and partial turns) reached, recursing through DoStep on a clone so the
// caller's position is never mutated.
func search(pos *arimaa.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, step := range arimaa.GenSteps(pos) {
		next := pos.Clone()
		result := arimaa.DoStep(next, step)
		if result != arimaa.Neither {
			nodes++
			continue
		}

		count := search(next, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", step, count)
		}
		nodes += count
	}
	return nodes
}
