// Package notation implements the text formats a search collaborator uses to
// ingest and emit arimaa.Position values: opening-placement text (the first
// two plies of a game), the long board printout, and the compact 66-character
// string, per spec.md §4.5/§6. None of it is on the core's hot path — GenSteps
// and DoStep never call into this package.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/arimaa-go/pkg/arimaa"
	"github.com/seekerror/stdlib/pkg/lang"
)

// ParseOpening decodes the two-line opening-placements text of spec.md §6:
// line 1 is White's placements, line 2 is Black's, each a whitespace-
// separated list of "<piece letter><square>" tokens. It returns the flat
// placement list NewPosition expects. A malformed line, a piece letter of
// the wrong case for its side, or an unknown square is a parse failure.
func ParseOpening(opening string) ([]arimaa.Placement, error) {
	lines := strings.Split(strings.TrimRight(opening, "\n"), "\n")
	if len(lines) != 2 {
		return nil, fmt.Errorf("notation: opening text must have exactly 2 lines, got %d", len(lines))
	}

	var placements []arimaa.Placement
	for i, side := range [2]arimaa.Side{arimaa.White, arimaa.Black} {
		for _, tok := range strings.Fields(lines[i]) {
			if len(tok) < 3 {
				return nil, fmt.Errorf("notation: invalid placement token %q on line %d", tok, i+1)
			}
			piece, err := arimaa.ParsePieceChar(tok[0])
			if err != nil {
				return nil, fmt.Errorf("notation: line %d: %w", i+1, err)
			}
			pside, ok := piece.Side()
			if !ok || pside != side {
				return nil, fmt.Errorf("notation: line %d: piece %q belongs to the wrong side", i+1, tok)
			}
			sq, err := arimaa.ParseSquare(tok[1:])
			if err != nil {
				return nil, fmt.Errorf("notation: line %d: %w", i+1, err)
			}
			placements = append(placements, arimaa.Placement{Piece: piece, Square: sq})
		}
	}
	return placements, nil
}

// FormatOpening is the inverse of ParseOpening, used by debug tooling to
// re-emit a setup it parsed. Placements within a side are emitted in the
// order they appear in placements; they are not sorted by square.
func FormatOpening(placements []arimaa.Placement) string {
	var lines [2][]string
	for _, pl := range placements {
		side, ok := pl.Piece.Side()
		if !ok {
			continue
		}
		lines[side] = append(lines[side], fmt.Sprintf("%v%v", pl.Piece, pl.Square))
	}
	return strings.Join(lines[arimaa.White], " ") + "\n" + strings.Join(lines[arimaa.Black], " ")
}

// CompactLen is the length of the compact notation string: the 64 board
// characters plus the two bracket delimiters.
const CompactLen = 66

// DecodeCompact parses the 66-character compact notation of spec.md §4.5: a
// '[', 64 piece characters in row-major order from a8 to h1, and a ']'. The
// string does not encode side to move, so the caller supplies it.
func DecodeCompact(s string, side arimaa.Side) ([]arimaa.Placement, error) {
	if len(s) != CompactLen || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("notation: compact notation must be %d chars bracketed in '[' ']', got %d", CompactLen, len(s))
	}
	body := s[1 : len(s)-1]

	var placements []arimaa.Placement
	for i := 0; i < 64; i++ {
		piece, err := arimaa.ParsePieceChar(body[i])
		if err != nil {
			return nil, fmt.Errorf("notation: compact notation index %d: %w", i, err)
		}
		if piece.IsEmpty() {
			continue
		}
		row := 8 - i/8
		col := i % 8
		sq, err := arimaa.AlgToIndex(col, row)
		if err != nil {
			return nil, fmt.Errorf("notation: compact notation index %d: %w", i, err)
		}
		placements = append(placements, arimaa.Placement{Piece: piece, Square: sq})
	}
	return placements, nil
}

// EncodeCompact renders p's board in the 66-character compact notation,
// reading row-major from a8 to h1; side to move is not encoded.
func EncodeCompact(p *arimaa.Position) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < 64; i++ {
		row := 8 - i/8
		col := i % 8
		sq, _ := arimaa.AlgToIndex(col, row)
		b.WriteString(p.PieceAt(sq).String())
	}
	b.WriteByte(']')
	return b.String()
}

// headerSuffix encodes the turn letter used in the full-board notation
// header: 'w'/'b' during play, 's' during a side's setup phase. 'g' (the
// format also reserves a "game over" marker) is recognized by ParsePosHeader,
// which rejects it with an error, and is never emitted by FormatPosNotation,
// since the core never itself declares a game finished outside of DoStep's
// return value.
func headerSuffix(side arimaa.Side, setup bool) byte {
	if setup {
		return 's'
	}
	if side == arimaa.White {
		return 'w'
	}
	return 'b'
}

// ParsePosHeader parses the "<ply><w|g|b|s>" header line of the full-board
// notation (spec.md §6). ply is returned as an optional value since a bare
// header with no leading digits (just the turn letter) is valid input that
// means "ply unspecified".
func ParsePosHeader(line string) (ply lang.Optional[int], side arimaa.Side, setup bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return ply, side, setup, fmt.Errorf("notation: empty turn header")
	}
	letter := line[len(line)-1]
	digits := line[:len(line)-1]
	if digits != "" {
		n, perr := strconv.Atoi(digits)
		if perr != nil {
			return ply, side, setup, fmt.Errorf("notation: invalid ply in header %q: %w", line, perr)
		}
		ply = lang.Some(n)
	}
	switch letter {
	case 'w':
		return ply, arimaa.White, false, nil
	case 'b':
		return ply, arimaa.Black, false, nil
	case 's':
		return ply, arimaa.White, true, nil
	case 'g':
		return ply, arimaa.White, false, fmt.Errorf("notation: header %q marks a finished game, nothing to decode", line)
	default:
		return ply, side, setup, fmt.Errorf("notation: invalid turn letter %q in header %q", letter, line)
	}
}

// FormatPosHeader is the inverse of ParsePosHeader for the non-setup case.
func FormatPosHeader(ply lang.Optional[int], side arimaa.Side) string {
	n, ok := ply.V()
	if !ok {
		return string(headerSuffix(side, false))
	}
	return fmt.Sprintf("%d%c", n, headerSuffix(side, false))
}

// DecodePosNotation parses the full-board long notation of spec.md §4.5: a
// header line, a single "+---+" top rule, and 8 row lines (each "N| X | X |
// ... |") — 10 lines exactly. Row labels count down from 8 to 1; column a is
// the leftmost cell, matching the square-indexing convention of bits.go/
// square.go. A bottom rule and a column-label footer are cosmetic only and
// are not part of the round-trippable wire format; see DESIGN.md. Empty trap
// squares render as 'x' and decode as Empty, identically to a space.
func DecodePosNotation(text string) (placements []arimaa.Placement, ply lang.Optional[int], side arimaa.Side, err error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 10 {
		return nil, ply, side, fmt.Errorf("notation: full-board notation must have 10 lines, got %d", len(lines))
	}

	ply, side, _, err = ParsePosHeader(lines[0])
	if err != nil {
		return nil, ply, side, err
	}
	if strings.TrimSpace(lines[1]) != strings.TrimSpace(topRule) {
		return nil, ply, side, fmt.Errorf("notation: expected top rule line, got %q", lines[1])
	}

	for r := 0; r < 8; r++ {
		row := 8 - r
		line := lines[2+r]
		cells, perr := extractRowCells(line, row)
		if perr != nil {
			return nil, ply, side, perr
		}
		for col, ch := range cells {
			if ch == 'x' {
				continue
			}
			piece, perr := arimaa.ParsePieceChar(ch)
			if perr != nil {
				return nil, ply, side, fmt.Errorf("notation: row %d: %w", row, perr)
			}
			if piece.IsEmpty() {
				continue
			}
			sq, perr := arimaa.AlgToIndex(col, row)
			if perr != nil {
				return nil, ply, side, perr
			}
			placements = append(placements, arimaa.Placement{Piece: piece, Square: sq})
		}
	}
	return placements, ply, side, nil
}

func extractRowCells(line string, row int) ([8]byte, error) {
	var cells [8]byte
	prefix := fmt.Sprintf("%d|", row)
	if !strings.HasPrefix(line, prefix) {
		return cells, fmt.Errorf("notation: malformed row line for rank %d: %q", row, line)
	}
	body := line[len(prefix):]
	// Each cell is " %c |" (4 characters), matching FormatPosNotation's layout.
	if len(body) != 8*4 {
		return cells, fmt.Errorf("notation: malformed row body for rank %d: %q", row, body)
	}
	for col := 0; col < 8; col++ {
		cells[col] = body[col*4+1]
	}
	return cells, nil
}

const topRule = " +---+---+---+---+---+---+---+---+"

// FormatPosNotation renders p in the 10-line long notation of spec.md §4.5:
// a turn header, a single top rule, and 8 row lines from rank 8 down to 1.
func FormatPosNotation(p *arimaa.Position, ply lang.Optional[int]) string {
	var b strings.Builder
	b.WriteString(FormatPosHeader(ply, p.Side()))
	b.WriteByte('\n')
	b.WriteString(topRule)
	b.WriteByte('\n')

	for row := 8; row >= 1; row-- {
		b.WriteString(strconv.Itoa(row))
		b.WriteByte('|')
		for col := 0; col < 8; col++ {
			sq, _ := arimaa.AlgToIndex(col, row)
			piece := p.PieceAt(sq)
			ch := piece.String()[0]
			if ch == ' ' && isTrapSquare(sq) {
				ch = 'x'
			}
			fmt.Fprintf(&b, " %c |", ch)
		}
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func isTrapSquare(sq arimaa.Square) bool {
	for _, t := range arimaa.TrapSquares {
		if t == sq {
			return true
		}
	}
	return false
}

// FromOpeningText parses a two-line opening-placements string and builds the
// Position it describes: White to move, a full turn's steps available, per
// spec.md §3's setup lifecycle.
func FromOpeningText(opening string, zt *arimaa.ZobristTable) (*arimaa.Position, error) {
	placements, err := ParseOpening(opening)
	if err != nil {
		return nil, err
	}
	return arimaa.NewPosition(placements, arimaa.White, zt)
}

// FromSmallNotation builds a Position from the 66-character compact
// notation and an explicit side to move, mirroring
// from_small_notation(s, side) of spec.md §6.
func FromSmallNotation(s string, side arimaa.Side, zt *arimaa.ZobristTable) (*arimaa.Position, error) {
	placements, err := DecodeCompact(s, side)
	if err != nil {
		return nil, err
	}
	return arimaa.NewPosition(placements, side, zt)
}

// ToSmallNotation renders p's board in compact notation, mirroring
// to_small_notation() of spec.md §6.
func ToSmallNotation(p *arimaa.Position) string {
	return EncodeCompact(p)
}

// FromPosNotation builds a Position from the 10-line full-board notation,
// mirroring from_pos_notation() of spec.md §6. The turn header's ply is
// discarded; it is metadata for a higher-level game-record collaborator, not
// part of Position's own state.
func FromPosNotation(text string, zt *arimaa.ZobristTable) (*arimaa.Position, error) {
	placements, _, side, err := DecodePosNotation(text)
	if err != nil {
		return nil, err
	}
	return arimaa.NewPosition(placements, side, zt)
}

// ToPosNotation renders p in the 10-line full-board notation with the given
// ply in its header, mirroring to_pos_notation() of spec.md §6.
func ToPosNotation(p *arimaa.Position, ply lang.Optional[int]) string {
	return FormatPosNotation(p, ply)
}
