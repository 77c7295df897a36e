package arimaa

// GenSteps returns every legal Step from p, per spec.md §4.2. It never
// mutates p. The shape of the result depends on where in the turn p sits:
//
//   - If the last sub-move was a Push, the only legal continuation is the
//     mandatory follow-up (an unfrozen friendly piece stronger than the
//     pushed piece's kind sliding into the vacated source square); nothing
//     else, and no Pass, is generated.
//   - Otherwise, normal slides and push initiations are generated, plus —
//     if the last sub-move was a non-rabbit Move by the side to move whose
//     mover is still on the board — the optional pull-window completions.
//   - Pass is always included except at the very start of a turn.
func GenSteps(p *Position) []Step {
	mySide := p.side
	oppSide := mySide.Opponent()
	empty := p.bitboards[Empty]

	if p.hasLastStep && p.lastStep.Kind == StepPush {
		return genPushContinuation(p, mySide)
	}

	aux := computeAux(p)
	var steps []Step

	if p.hasLastStep && p.lastStep.Kind == StepMove {
		if kind := p.lastStep.Piece.Kind(); kind != Rabbit {
			if side, _ := p.lastStep.Piece.Side(); side == mySide {
				// The mover must still occupy its destination: if it was
				// trap-removed immediately after its own slide, the pull
				// window it would have opened never materializes.
				if p.pieces[p.lastStep.To] == p.lastStep.Piece {
					steps = append(steps, genPullCompletion(p, oppSide)...)
				}
			}
		}
	}

	steps = append(steps, genNormalSlides(p, aux, mySide, empty)...)

	if p.stepsLeft >= 2 {
		steps = append(steps, genPushInitiations(p, aux, mySide, oppSide, empty)...)
	}

	if !(p.stepsLeft == StartingStepsPerTurn && !p.hasLastStep) {
		steps = append(steps, Pass())
	}

	return steps
}

func genPushContinuation(p *Position, mySide Side) []Step {
	aux := computeAux(p)
	vacated := p.lastStep.From
	pushedKind := p.lastStep.Piece.Kind()

	candidates := aux.strongerThanKind(mySide, pushedKind) &^ aux.frozen & NeighborsOf(BitMask(vacated))

	var steps []Step
	for candidates != 0 {
		src := PopLSB(&candidates)
		steps = append(steps, Move(p.pieces[src], src, vacated))
	}
	return steps
}

func genPullCompletion(p *Position, oppSide Side) []Step {
	vacated := p.lastStep.From
	moverKind := p.lastStep.Piece.Kind()

	var steps []Step
	for k := Rabbit; k < moverKind; k++ {
		candidates := p.bitboards[MakePiece(oppSide, k)] & NeighborsOf(BitMask(vacated))
		for candidates != 0 {
			src := PopLSB(&candidates)
			steps = append(steps, Move(p.pieces[src], src, vacated))
		}
	}
	return steps
}

func genNormalSlides(p *Position, aux auxMasks, mySide Side, empty Bitboard) []Step {
	var steps []Step
	for k := Rabbit; k <= Elephant; k++ {
		piece := MakePiece(mySide, k)
		movable := p.bitboards[piece] &^ aux.frozen
		for movable != 0 {
			src := PopLSB(&movable)
			srcMask := BitMask(src)
			var dests Bitboard
			if k == Rabbit {
				dests = RabbitSteps(mySide, srcMask) & empty
			} else {
				dests = NeighborsOf(srcMask) & empty
			}
			for dests != 0 {
				dst := PopLSB(&dests)
				steps = append(steps, Move(piece, src, dst))
			}
		}
	}
	return steps
}

func genPushInitiations(p *Position, aux auxMasks, mySide, oppSide Side, empty Bitboard) []Step {
	var steps []Step
	for k := Rabbit; k <= Elephant; k++ {
		oppPiece := MakePiece(oppSide, k)
		oppPieces := p.bitboards[oppPiece]
		unfrozenStronger := aux.strongerThanKind(mySide, k) &^ aux.frozen

		for oppSquares := oppPieces; oppSquares != 0; {
			oppSq := PopLSB(&oppSquares)
			oppSqMask := BitMask(oppSq)
			if NeighborsOf(oppSqMask)&unfrozenStronger == 0 {
				continue
			}
			dests := NeighborsOf(oppSqMask) & empty
			for dests != 0 {
				dst := PopLSB(&dests)
				steps = append(steps, Push(oppPiece, oppSq, dst))
			}
		}
	}
	return steps
}
