package arimaa

// TurnResult reports whether a completed turn ended the game.
type TurnResult uint8

const (
	Neither TurnResult = iota
	WhiteWins
	BlackWins
)

func winFor(side Side) TurnResult {
	if side == White {
		return WhiteWins
	}
	return BlackWins
}

// homeRank is the rank a side starts on.
func homeRank(side Side) Bitboard {
	if side == White {
		return Rank1Mask
	}
	return Rank8Mask
}

// goalRank is the rank a side's rabbits must reach to win: the opponent's
// home rank.
func goalRank(side Side) Bitboard {
	return homeRank(side.Opponent())
}

// DoStep applies a single Step to p, per spec.md §4.4, and returns whether
// the turn just ended in a win. step is assumed to come from GenSteps (or,
// for Remove, to be synthesized internally by trap resolution); applying a
// step that is not legal for p is a DomainAssertion and may panic or
// corrupt state.
//
// Move and Push both consume a step and run trap resolution; Push alone
// never ends a turn by exhausting steps_left, since a legal Push is only
// generated when at least 2 steps remain. Pass ends the turn outright.
// Place and Remove are setup/trap primitives that do not touch steps_left
// or end the turn themselves.
func DoStep(p *Position, step Step) TurnResult {
	switch step.Kind {
	case StepMove, StepPush:
		p.slide(step.Piece, step.From, step.To)
		p.stepsLeft--
		p.resolveTraps()

		if p.stepsLeft == 0 {
			return p.endTurn()
		}
		p.lastStep = step
		p.hasLastStep = true
		return Neither

	case StepPlace:
		p.place(step.Piece, step.From)
		return Neither

	case StepRemove:
		p.remove(step.Piece, step.From)
		return Neither

	case StepPass:
		return p.endTurn()

	default:
		panic("arimaa: DoStep given a step with an invalid kind")
	}
}

// slide moves piece from src to dst, both assumed to be consistent with the
// board (src occupied by piece, dst empty); it updates the redundant
// representation and the incremental hash in lockstep.
func (p *Position) slide(piece Piece, src, dst Square) {
	if p.pieces[src] != piece {
		panic("arimaa: slide source does not hold the given piece")
	}
	if !p.pieces[dst].IsEmpty() {
		panic("arimaa: slide destination is occupied")
	}
	mask := BitMask(src) | BitMask(dst)
	side, _ := piece.Side()

	p.bitboards[piece] ^= mask
	p.bitboards[Empty] ^= mask
	p.placement[side] ^= mask
	p.pieces[src] = Empty
	p.pieces[dst] = piece

	p.currentHash = p.zt.XORPiece(p.currentHash, piece, src)
	p.currentHash = p.zt.XORPiece(p.currentHash, piece, dst)
}

// place sets piece onto sq, assumed empty; used only during the
// setup-phase, outside the turn loop, so it does not touch steps_left.
func (p *Position) place(piece Piece, sq Square) {
	if !p.pieces[sq].IsEmpty() {
		panic("arimaa: place target is occupied")
	}
	mask := BitMask(sq)
	side, _ := piece.Side()

	p.bitboards[piece] |= mask
	p.bitboards[Empty] &^= mask
	p.placement[side] |= mask
	p.pieces[sq] = piece

	p.currentHash = p.zt.XORPiece(p.currentHash, piece, sq)
}

// remove clears piece from sq, assumed occupied by it.
func (p *Position) remove(piece Piece, sq Square) {
	if p.pieces[sq] != piece {
		panic("arimaa: remove target does not hold the given piece")
	}
	mask := BitMask(sq)
	side, _ := piece.Side()

	p.bitboards[piece] &^= mask
	p.bitboards[Empty] |= mask
	p.placement[side] &^= mask
	p.pieces[sq] = Empty

	p.currentHash = p.zt.XORPiece(p.currentHash, piece, sq)
}

// resolveTraps iterates the four trap squares in a fixed order and, for the
// first one holding a piece with no friendly guard on its orthogonal
// neighbors, recursively applies a synthesized Remove. At most one trap is
// affected per sub-move, so resolution stops after the first removal: a
// single slide can newly expose at most one trap (either the mover's own
// destination, or a trap whose sole guard the mover just vacated), and
// removing a piece cannot itself unguard a different trap.
func (p *Position) resolveTraps() {
	for _, trapSq := range TrapSquares {
		piece := p.pieces[trapSq]
		if piece.IsEmpty() {
			continue
		}
		side, _ := piece.Side()
		if p.placement[side]&trapGuardMask[trapSq] != 0 {
			continue
		}
		p.remove(piece, trapSq)
		return
	}
}

// endTurn applies the goal/elimination and null-move/repetition checks of
// spec.md §4.4 and, absent either, advances to the next turn.
func (p *Position) endTurn() TurnResult {
	mover := p.side
	opp := mover.Opponent()

	moverRabbits := p.bitboards[MakePiece(mover, Rabbit)]
	oppRabbits := p.bitboards[MakePiece(opp, Rabbit)]

	switch {
	case moverRabbits&goalRank(mover) != 0:
		return winFor(mover)
	case oppRabbits&goalRank(opp) != 0:
		return winFor(opp)
	case oppRabbits == 0:
		return winFor(mover)
	case moverRabbits == 0:
		return winFor(opp)
	}

	if p.currentHash == p.initialHash || p.currentHash == p.myLast {
		return winFor(opp)
	}

	p.myLast = p.oppLast
	p.oppLast = p.initialHash
	p.side = opp
	p.currentHash = p.zt.XORSide(p.currentHash)
	p.initialHash = p.currentHash
	p.stepsLeft = StartingStepsPerTurn
	p.hasLastStep = false
	p.lastStep = Step{}

	return Neither
}
