package arimaa_test

import (
	"testing"

	"github.com/herohde/arimaa-go/pkg/arimaa"
	"github.com/stretchr/testify/assert"
)

func sq(t *testing.T, col, row int) arimaa.Square {
	t.Helper()
	s, err := arimaa.AlgToIndex(col, row)
	assert.NoError(t, err)
	return s
}

func newPosition(t *testing.T, side arimaa.Side, placements ...arimaa.Placement) *arimaa.Position {
	t.Helper()
	zt := arimaa.NewZobristTable(arimaa.DefaultZobristSeed)
	pos, err := arimaa.NewPosition(placements, side, zt)
	assert.NoError(t, err)
	return pos
}

func containsMove(steps []arimaa.Step, want arimaa.Step) bool {
	for _, s := range steps {
		if s == want {
			return true
		}
	}
	return false
}

func TestFreezeBlocksSoloMove(t *testing.T) {
	d4 := sq(t, 3, 4)
	d5 := sq(t, 3, 5)
	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: arimaa.MakePiece(arimaa.White, arimaa.Cat), Square: d4},
		arimaa.Placement{Piece: arimaa.MakePiece(arimaa.Black, arimaa.Dog), Square: d5},
	)

	steps := arimaa.GenSteps(pos)
	// A lone frozen piece with no legal push/pull available and no prior
	// sub-move this turn yields an empty legal-step set (Pass is excluded
	// at the very start of a turn per spec.md §4.2 step 5).
	assert.Empty(t, steps)
}

func TestFreezeRequiresNoFriendlyNeighbor(t *testing.T) {
	d4 := sq(t, 3, 4)
	d5 := sq(t, 3, 5)
	c4 := sq(t, 2, 4)
	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: arimaa.MakePiece(arimaa.White, arimaa.Cat), Square: d4},
		arimaa.Placement{Piece: arimaa.MakePiece(arimaa.White, arimaa.Dog), Square: c4},
		arimaa.Placement{Piece: arimaa.MakePiece(arimaa.Black, arimaa.Dog), Square: d5},
	)

	steps := arimaa.GenSteps(pos)
	// The Cat has a friendly neighbor (the Dog on c4), so it is not frozen
	// despite the adjacent stronger Black Dog.
	wantMove := arimaa.Move(arimaa.MakePiece(arimaa.White, arimaa.Cat), d4, sq(t, 3, 3))
	assert.True(t, containsMove(steps, wantMove))
}

func TestPushInitiationRequiresTwoSteps(t *testing.T) {
	d4 := sq(t, 3, 4)
	d5 := sq(t, 3, 5)
	welephant := arimaa.MakePiece(arimaa.White, arimaa.Elephant)
	brabbit := arimaa.MakePiece(arimaa.Black, arimaa.Rabbit)

	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: welephant, Square: d4},
		arimaa.Placement{Piece: brabbit, Square: d5},
	)

	steps := arimaa.GenSteps(pos)

	var pushes, slides int
	for _, s := range steps {
		switch s.Kind {
		case arimaa.StepPush:
			pushes++
			assert.Equal(t, brabbit, s.Piece)
			assert.Equal(t, d5, s.From)
		case arimaa.StepMove:
			slides++
			assert.Equal(t, welephant, s.Piece)
		case arimaa.StepPass:
			t.Fatal("pass should not be legal at the start of a turn")
		}
	}
	assert.Equal(t, 3, pushes) // c5, e5, d6 are empty neighbors of d5
	assert.Equal(t, 3, slides) // c4, e4, d3 are empty neighbors of d4
}

func TestNoPushInitiationWithOnlyOneStepLeft(t *testing.T) {
	d4 := sq(t, 3, 4)
	d5 := sq(t, 3, 5)
	a1 := sq(t, 0, 1)
	a2 := sq(t, 0, 2)

	welephant := arimaa.MakePiece(arimaa.White, arimaa.Elephant)
	wcat := arimaa.MakePiece(arimaa.White, arimaa.Cat)
	brabbit := arimaa.MakePiece(arimaa.Black, arimaa.Rabbit)

	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: welephant, Square: d4},
		arimaa.Placement{Piece: brabbit, Square: d5},
		arimaa.Placement{Piece: wcat, Square: a1},
	)

	// Burn 3 of the turn's 4 steps shuttling the cat, leaving exactly 1.
	arimaa.DoStep(pos, arimaa.Move(wcat, a1, a2))
	arimaa.DoStep(pos, arimaa.Move(wcat, a2, a1))
	arimaa.DoStep(pos, arimaa.Move(wcat, a1, a2))
	assert.Equal(t, 1, pos.StepsLeft())

	for _, s := range arimaa.GenSteps(pos) {
		assert.NotEqual(t, arimaa.StepPush, s.Kind, "push initiation needs 2+ steps left")
	}
}

func TestPullCompletionOfferedAfterNonRabbitSlide(t *testing.T) {
	d4 := sq(t, 3, 4)
	d3 := sq(t, 3, 3)
	c4 := sq(t, 2, 4)

	wdog := arimaa.MakePiece(arimaa.White, arimaa.Dog)
	bcat := arimaa.MakePiece(arimaa.Black, arimaa.Cat)

	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: wdog, Square: d4},
		arimaa.Placement{Piece: bcat, Square: c4},
	)

	arimaa.DoStep(pos, arimaa.Move(wdog, d4, d3))

	steps := arimaa.GenSteps(pos)
	want := arimaa.Move(bcat, c4, d4)
	assert.True(t, containsMove(steps, want))
}

func TestNoPullCompletionForRabbitMover(t *testing.T) {
	d4 := sq(t, 3, 4)
	d3 := sq(t, 3, 3)
	c4 := sq(t, 2, 4)

	wrabbit := arimaa.MakePiece(arimaa.White, arimaa.Rabbit)
	bcat := arimaa.MakePiece(arimaa.Black, arimaa.Cat)

	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: wrabbit, Square: d4},
		arimaa.Placement{Piece: bcat, Square: c4},
	)

	arimaa.DoStep(pos, arimaa.Move(wrabbit, d4, d3))

	steps := arimaa.GenSteps(pos)
	unwanted := arimaa.Move(bcat, c4, d4)
	assert.False(t, containsMove(steps, unwanted))
}

// S6: after a Push sub-move, GenSteps returns only the follow-up slides
// into the vacated square, and never Pass.
func TestPushContinuationIsExclusive(t *testing.T) {
	d4 := sq(t, 3, 4)
	d5 := sq(t, 3, 5)
	e5 := sq(t, 4, 5)

	welephant := arimaa.MakePiece(arimaa.White, arimaa.Elephant)
	brabbit := arimaa.MakePiece(arimaa.Black, arimaa.Rabbit)

	pos := newPosition(t, arimaa.White,
		arimaa.Placement{Piece: welephant, Square: d4},
		arimaa.Placement{Piece: brabbit, Square: d5},
	)

	result := arimaa.DoStep(pos, arimaa.Push(brabbit, d5, e5))
	assert.Equal(t, arimaa.Neither, result)

	last, ok := pos.LastStep()
	assert.True(t, ok)
	assert.Equal(t, arimaa.StepPush, last.Kind)

	steps := arimaa.GenSteps(pos)
	assert.Equal(t, []arimaa.Step{arimaa.Move(welephant, d4, d5)}, steps)
}

func TestRabbitMonotonicity(t *testing.T) {
	d4 := sq(t, 3, 4)
	wrabbit := arimaa.MakePiece(arimaa.White, arimaa.Rabbit)
	brabbit := arimaa.MakePiece(arimaa.Black, arimaa.Rabbit)

	// Sideways steps are legal, so monotonicity is checked on the row, not
	// on the raw square index (a westward step lowers the index by one).
	wp := newPosition(t, arimaa.White, arimaa.Placement{Piece: wrabbit, Square: d4})
	for _, s := range arimaa.GenSteps(wp) {
		if s.Kind == arimaa.StepMove {
			_, fromRow := arimaa.IndexToAlg(s.From)
			_, toRow := arimaa.IndexToAlg(s.To)
			assert.GreaterOrEqual(t, toRow, fromRow)
		}
	}

	bp := newPosition(t, arimaa.Black, arimaa.Placement{Piece: brabbit, Square: d4})
	for _, s := range arimaa.GenSteps(bp) {
		if s.Kind == arimaa.StepMove {
			_, fromRow := arimaa.IndexToAlg(s.From)
			_, toRow := arimaa.IndexToAlg(s.To)
			assert.LessOrEqual(t, toRow, fromRow)
		}
	}
}
