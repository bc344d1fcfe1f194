package scramble

import "fmt"

// Apply performs the forward effect of op on b in place.
func Apply(b *Buffer, op Operation) error {
	switch o := op.(type) {
	case SwapPosition:
		return b.Swap(o.X, o.Y)
	case SwapLetter:
		return swapLetters(b, o.A, o.B)
	case ReverseRange:
		return b.Reverse(o.Lo, o.Hi)
	case RotateFixed:
		rotate(b, o.Direction, o.Steps)
		return nil
	case RotateByLetter:
		p, err := b.Index(o.Letter)
		if err != nil {
			return err
		}
		b.RotateRight(letterShift(p, b.Len()))
		return nil
	case MovePosition:
		return move(b, o.From, o.To)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownOperation, op)
	}
}

func swapLetters(b *Buffer, x, y rune) error {
	i, err := b.Index(x)
	if err != nil {
		return err
	}
	j, err := b.Index(y)
	if err != nil {
		return err
	}
	return b.Swap(i, j)
}

func rotate(b *Buffer, d Direction, steps int) {
	if d == Left {
		b.RotateLeft(steps)
		return
	}
	b.RotateRight(steps)
}

// move reinserts at the end when to is past the shortened buffer.
func move(b *Buffer, from, to int) error {
	if err := b.checkIndex(to); err != nil {
		return err
	}
	r, err := b.Delete(from)
	if err != nil {
		return err
	}
	if to >= b.Len() {
		to = b.Len()
	}
	return b.Insert(to, r)
}

// letterShift is the right-rotation amount for a letter found at p.
func letterShift(p, n int) int {
	r := p + 1
	if p >= 4 {
		r++
	}
	return r % n
}

// letterTarget is where a letter found at p lands after the rotation.
func letterTarget(p, n int) int {
	return (p + letterShift(p, n)) % n
}
