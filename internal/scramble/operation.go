package scramble

import "fmt"

// Direction is the rotation direction of RotateFixed.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the mirrored direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Operation is one instruction of a scramble program. The set is closed:
// only the types in this package implement it.
//
// String renders the canonical program-text line.
type Operation interface {
	fmt.Stringer
	operation()
}

// SwapPosition exchanges the runes at X and Y.
type SwapPosition struct {
	X, Y int
}

// SwapLetter exchanges the positions of runes A and B.
type SwapLetter struct {
	A, B rune
}

// ReverseRange reverses the inclusive span [Lo, Hi].
type ReverseRange struct {
	Lo, Hi int
}

// RotateFixed rotates the whole buffer by Steps mod N.
type RotateFixed struct {
	Direction Direction
	Steps     int
}

// RotateByLetter rotates right by an amount derived from Letter's index.
type RotateByLetter struct {
	Letter rune
}

// MovePosition removes the rune at From and reinserts it at To.
type MovePosition struct {
	From, To int
}

func (SwapPosition) operation()   {}
func (SwapLetter) operation()     {}
func (ReverseRange) operation()   {}
func (RotateFixed) operation()    {}
func (RotateByLetter) operation() {}
func (MovePosition) operation()   {}

func (o SwapPosition) String() string {
	return fmt.Sprintf("swap position %d with position %d", o.X, o.Y)
}

func (o SwapLetter) String() string {
	return fmt.Sprintf("swap letter %c with letter %c", o.A, o.B)
}

func (o ReverseRange) String() string {
	return fmt.Sprintf("reverse positions %d through %d", o.Lo, o.Hi)
}

func (o RotateFixed) String() string {
	unit := "steps"
	if o.Steps == 1 {
		unit = "step"
	}
	return fmt.Sprintf("rotate %s %d %s", o.Direction, o.Steps, unit)
}

func (o RotateByLetter) String() string {
	return fmt.Sprintf("rotate based on position of letter %c", o.Letter)
}

func (o MovePosition) String() string {
	return fmt.Sprintf("move position %d to position %d", o.From, o.To)
}

// Program is an ordered operation list. Order is significant.
type Program []Operation
