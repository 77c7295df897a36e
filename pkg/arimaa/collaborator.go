package arimaa

// Collaborator sketches the contract a search/evaluation component would
// implement against *Position, mirroring the GameState trait the original
// prototype wired to an MCTS crate
// (_examples/original_source/src/search.rs). *Position implements it below
// by delegating to GenSteps, DoStep and CurrentHash; no search, evaluation,
// or time management is provided here (spec.md §1), and the core never
// calls through this interface itself — GenSteps/DoStep are called
// directly as package functions on a concrete *Position on the hot path,
// with no dynamic dispatch (spec.md §9).
//
// Collaborator exists purely as a documented extension point.
type Collaborator interface {
	// AvailableMoves returns the legal steps from the current state.
	AvailableMoves() []Step
	// MakeMove applies a step and reports whether it ended the game.
	MakeMove(step Step) TurnResult
	// Hash returns a fingerprint suitable for a transposition table.
	Hash() ZobristHash
}

// AvailableMoves implements Collaborator for *Position.
func (p *Position) AvailableMoves() []Step {
	return GenSteps(p)
}

// MakeMove implements Collaborator for *Position.
func (p *Position) MakeMove(step Step) TurnResult {
	return DoStep(p, step)
}

// Hash implements Collaborator for *Position.
func (p *Position) Hash() ZobristHash {
	return p.CurrentHash()
}

var _ Collaborator = (*Position)(nil)
