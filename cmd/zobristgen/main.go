// zobristgen documents the I/O contract of the Zobrist table *generator*
// that spec.md §1 names as an out-of-scope collaborator: a deterministic
// PRNG fill of a static table, keyed only by its seed. The core
// (pkg/arimaa.NewZobristTable) already performs the fill; this binary exists
// so the generator's shape and seed can be inspected or re-derived offline
// without linking against a search/engine collaborator.
package main

import (
	"context"
	"flag"

	"github.com/herohde/arimaa-go/pkg/arimaa"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var seed = flag.Int64("seed", arimaa.DefaultZobristSeed, "Zobrist table seed")

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "arimaa zobristgen %v", version)
	logw.Infof(ctx, "seed: 0x%x", *seed)
	logw.Infof(ctx, "shape: [side=2][kind=%d][square=%d] + 1 side-to-move word", arimaa.NumKinds, arimaa.NumSquares)

	zt := arimaa.NewZobristTable(*seed)

	var empty [arimaa.NumSquares]arimaa.Piece
	logw.Infof(ctx, "hash of the empty board, White to move: 0x%x", zt.Hash(&empty, arimaa.White))
	logw.Infof(ctx, "hash of the empty board, Black to move: 0x%x", zt.Hash(&empty, arimaa.Black))
}
