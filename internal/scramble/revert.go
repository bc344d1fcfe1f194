package scramble

import "fmt"

// MinInvertibleLen is the shortest buffer for which RotateByLetter is
// inverted. Shorter buffers fail with ErrAmbiguousInverse.
const MinInvertibleLen = 5

// Revert undoes the forward effect of op on b in place. In strict mode a
// RotateByLetter with several possible predecessors fails instead of
// taking the parity-rule candidate.
func Revert(b *Buffer, op Operation, strict bool) error {
	switch o := op.(type) {
	case SwapPosition, SwapLetter, ReverseRange:
		return Apply(b, op)
	case RotateFixed:
		rotate(b, o.Direction.Opposite(), o.Steps)
		return nil
	case RotateByLetter:
		return revertLetterRotation(b, o.Letter, strict)
	case MovePosition:
		return move(b, o.To, o.From)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownOperation, op)
	}
}

func revertLetterRotation(b *Buffer, letter rune, strict bool) error {
	n := b.Len()
	if n < MinInvertibleLen {
		return fmt.Errorf("%w: buffer length %d below %d", ErrAmbiguousInverse, n, MinInvertibleLen)
	}
	q, err := b.Index(letter)
	if err != nil {
		return err
	}
	p, err := letterOrigin(q, n, strict)
	if err != nil {
		return fmt.Errorf("%w: letter %q", err, letter)
	}
	b.RotateLeft(mod(q-p, n))
	return nil
}

// letterOrigin returns the index p the letter occupied before a forward
// rotation left it at q.
func letterOrigin(q, n int, strict bool) (int, error) {
	candidates := letterOrigins(q, n)
	switch len(candidates) {
	case 0:
		return 0, fmt.Errorf("%w: no origin lands on %d", ErrAmbiguousInverse, q)
	case 1:
		return candidates[0], nil
	}
	if !strict {
		p := parityOrigin(q, n)
		for _, c := range candidates {
			if c == p {
				return p, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: origins %v all land on %d", ErrAmbiguousInverse, candidates, q)
}

// letterOrigins lists every p in [0,n) whose forward target is q.
func letterOrigins(q, n int) []int {
	var out []int
	for p := 0; p < n; p++ {
		if letterTarget(p, n) == q {
			out = append(out, p)
		}
	}
	return out
}

// parityOrigin is the closed-form inverse. An odd q came from p < 4 with
// q = 2p+1; an even q came from p >= 4 with q = 2p+2 taken mod n, so q is
// lifted by n until it exceeds n before halving.
func parityOrigin(q, n int) int {
	if q%2 == 1 {
		return (q - 1) / 2
	}
	for q <= n {
		q += n
	}
	return q/2 - 1
}
