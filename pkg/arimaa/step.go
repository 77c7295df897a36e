package arimaa

import "fmt"

// StepKind distinguishes the shapes a Step can take. Only Move, Push and
// Pass are ever handed to DoStep by a caller driving GenSteps; Remove and
// Place are synthesized internally (Remove by trap resolution in DoStep;
// Place is a setup-phase primitive outside the turn loop) and are exposed
// here mainly so tests and notation tooling can construct and print them.
type StepKind uint8

const (
	StepMove StepKind = iota
	StepPush
	StepPlace
	StepRemove
	StepPass
)

// Step is the tagged union of the five single-square actions that make up
// an Arimaa turn, per spec.md §3.
type Step struct {
	Kind  StepKind
	Piece Piece
	// From is the step's source square for Move/Push/Remove, or the
	// target square for Place. Unused for Pass.
	From Square
	// To is the step's destination square for Move/Push. Unused otherwise.
	To Square
}

// Move returns a normal slide of piece from src to dst.
func Move(piece Piece, src, dst Square) Step {
	return Step{Kind: StepMove, Piece: piece, From: src, To: dst}
}

// Push returns the displaced opposing piece's half of a push, from src to dst.
func Push(piece Piece, src, dst Square) Step {
	return Step{Kind: StepPush, Piece: piece, From: src, To: dst}
}

// Place returns a setup-phase placement of piece onto sq.
func Place(piece Piece, sq Square) Step {
	return Step{Kind: StepPlace, Piece: piece, From: sq}
}

// Remove returns a trap-resolution removal of piece from sq.
func Remove(piece Piece, sq Square) Step {
	return Step{Kind: StepRemove, Piece: piece, From: sq}
}

// Pass returns the pass step, legal only after at least one sub-move in a turn.
func Pass() Step {
	return Step{Kind: StepPass}
}

// Equals reports whether two steps describe the same action.
func (s Step) Equals(o Step) bool {
	return s == o
}

func direction(from, to Square) (byte, error) {
	cf, rf := IndexToAlg(from)
	ct, rt := IndexToAlg(to)
	switch {
	case rt > rf:
		return 'n', nil
	case rt < rf:
		return 's', nil
	case ct > cf:
		return 'e', nil
	case ct < cf:
		return 'w', nil
	default:
		return 0, fmt.Errorf("arimaa: step from %v to %v is not a single orthogonal hop", from, to)
	}
}

// String renders the step in the single-square notation of spec.md §4.5:
// "Pp##d" for a Move/Push (piece letter, source square, direction), "Pp##"
// for a Place, "Pp##x" for a Remove, and "pass" for Pass.
func (s Step) String() string {
	switch s.Kind {
	case StepPass:
		return "pass"
	case StepPlace:
		return fmt.Sprintf("%s%v", s.Piece, s.From)
	case StepRemove:
		return fmt.Sprintf("%s%vx", s.Piece, s.From)
	case StepMove, StepPush:
		d, err := direction(s.From, s.To)
		if err != nil {
			panic(err)
		}
		return fmt.Sprintf("%s%v%c", s.Piece, s.From, d)
	default:
		panic(fmt.Sprintf("arimaa: invalid step kind %d", s.Kind))
	}
}

// ParseStep parses the single-square notation produced by Step.String. No
// position is consulted: a direction character is resolved into a
// destination square from the source square alone, and the caller is
// responsible for validating the step against a position. Move and Push
// print identically, so a step with a direction always parses as a Move.
func ParseStep(s string) (Step, error) {
	if s == "pass" {
		return Pass(), nil
	}
	if len(s) < 3 {
		return Step{}, fmt.Errorf("arimaa: invalid step %q", s)
	}
	piece, err := ParsePieceChar(s[0])
	if err != nil {
		return Step{}, fmt.Errorf("arimaa: invalid step %q: %w", s, err)
	}
	sq, err := ParseSquare(s[1:3])
	if err != nil {
		return Step{}, fmt.Errorf("arimaa: invalid step %q: %w", s, err)
	}
	rest := s[3:]
	switch rest {
	case "":
		return Place(piece, sq), nil
	case "x":
		return Remove(piece, sq), nil
	case "n", "e", "s", "w":
		col, row := IndexToAlg(sq)
		switch rest[0] {
		case 'n':
			row++
		case 's':
			row--
		case 'e':
			col++
		case 'w':
			col--
		}
		dst, err := AlgToIndex(col, row)
		if err != nil {
			return Step{}, fmt.Errorf("arimaa: invalid step %q: destination off board", s)
		}
		return Move(piece, sq, dst), nil
	default:
		return Step{}, fmt.Errorf("arimaa: invalid step suffix %q in %q", rest, s)
	}
}
