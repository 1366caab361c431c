package entity

import "fmt"

// Outcome is derived from a board and never stored as the source of truth.
type Outcome uint8

const (
	None Outcome = iota
	PlayerWins
	OpponentWins
	Tie
)

var outcomeNames = map[Outcome]string{
	None:         "none",
	PlayerWins:   "player_wins",
	OpponentWins: "opponent_wins",
	Tie:          "tie",
}

func (that Outcome) String() string {
	if name, ok := outcomeNames[that]; ok {
		return name
	}

	return fmt.Sprintf("outcome(%d)", uint8(that))
}

func (that Outcome) IsTerminal() bool {
	return that != None
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}

// WinnerOutcome maps the mark of a completed line to the outcome.
func WinnerOutcome(mark Mark) Outcome {
	switch mark {
	case PlayerMark:
		return PlayerWins
	case OpponentMark:
		return OpponentWins
	default:
		return None
	}
}

type LineKind uint8

const (
	Row LineKind = iota
	Column
	Diagonal
)

func (that LineKind) String() string {
	switch that {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("line(%d)", uint8(that))
	}
}

// Line is one of the eight winning triples. Diagonal 0 runs from the top-left
// corner, diagonal 1 from the top-right corner.
type Line struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// Lines lists every line in evaluation order.
var Lines = [8]Line{
	{Kind: Row, Index: 0},
	{Kind: Row, Index: 1},
	{Kind: Row, Index: 2},
	{Kind: Column, Index: 0},
	{Kind: Column, Index: 1},
	{Kind: Column, Index: 2},
	{Kind: Diagonal, Index: 0},
	{Kind: Diagonal, Index: 1},
}

// Cells returns the coordinates covered by the line.
func (that Line) Cells() [BoardSize]Move {
	var cells [BoardSize]Move
	for i := range BoardSize {
		switch that.Kind {
		case Row:
			cells[i] = Move{Row: that.Index, Col: i}
		case Column:
			cells[i] = Move{Row: i, Col: that.Index}
		case Diagonal:
			if that.Index == 0 {
				cells[i] = Move{Row: i, Col: i}
			} else {
				cells[i] = Move{Row: i, Col: BoardSize - 1 - i}
			}
		}
	}

	return cells
}

// Contains reports whether the cell lies on the line.
func (that Line) Contains(row, col int) bool {
	for _, cell := range that.Cells() {
		if cell.Row == row && cell.Col == col {
			return true
		}
	}

	return false
}

func (that Line) String() string {
	if that.Kind == Diagonal {
		if that.Index == 0 {
			return "main diagonal"
		}
		return "anti diagonal"
	}

	return fmt.Sprintf("%s %d", that.Kind, that.Index)
}
