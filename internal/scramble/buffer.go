package scramble

import "fmt"

// Buffer is a fixed-length sequence of distinct runes mutated in place.
type Buffer struct {
	cells []rune
}

// NewBuffer copies s into a new buffer.
func NewBuffer(s string) *Buffer {
	return &Buffer{cells: []rune(s)}
}

func (b *Buffer) Len() int {
	return len(b.cells)
}

func (b *Buffer) String() string {
	return string(b.cells)
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	cells := make([]rune, len(b.cells))
	copy(cells, b.cells)
	return &Buffer{cells: cells}
}

// Validate reports ErrNotFound for the first duplicated rune.
func (b *Buffer) Validate() error {
	seen := make(map[rune]int, len(b.cells))
	for i, r := range b.cells {
		if j, ok := seen[r]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrNotFound, r, j, i)
		}
		seen[r] = i
	}
	return nil
}

func (b *Buffer) checkIndex(i int) error {
	if i < 0 || i >= len(b.cells) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, i, len(b.cells))
	}
	return nil
}

func (b *Buffer) At(i int) (rune, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	return b.cells[i], nil
}

func (b *Buffer) Set(i int, r rune) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.cells[i] = r
	return nil
}

// Delete removes the rune at i and shifts the tail left by one.
func (b *Buffer) Delete(i int) (rune, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	r := b.cells[i]
	b.cells = append(b.cells[:i], b.cells[i+1:]...)
	return r, nil
}

// Insert places r at i and shifts the tail right by one. i == Len appends.
func (b *Buffer) Insert(i int, r rune) error {
	if i < 0 || i > len(b.cells) {
		return fmt.Errorf("%w: insert at %d not in [0,%d]", ErrIndex, i, len(b.cells))
	}
	b.cells = append(b.cells, 0)
	copy(b.cells[i+1:], b.cells[i:])
	b.cells[i] = r
	return nil
}

// Index returns the position of r. It fails unless r occurs exactly once.
func (b *Buffer) Index(r rune) (int, error) {
	at := -1
	for i, c := range b.cells {
		if c != r {
			continue
		}
		if at >= 0 {
			return 0, fmt.Errorf("%w: %q is duplicated", ErrNotFound, r)
		}
		at = i
	}
	if at < 0 {
		return 0, fmt.Errorf("%w: %q is absent", ErrNotFound, r)
	}
	return at, nil
}

func (b *Buffer) Swap(i, j int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if err := b.checkIndex(j); err != nil {
		return err
	}
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	return nil
}

// Reverse reverses the inclusive span [lo, hi].
func (b *Buffer) Reverse(lo, hi int) error {
	if err := b.checkIndex(lo); err != nil {
		return err
	}
	if err := b.checkIndex(hi); err != nil {
		return err
	}
	if lo > hi {
		return fmt.Errorf("%w: reverse span %d through %d", ErrIndex, lo, hi)
	}
	for ; lo < hi; lo, hi = lo+1, hi-1 {
		b.cells[lo], b.cells[hi] = b.cells[hi], b.cells[lo]
	}
	return nil
}

// RotateLeft moves the first s mod Len runes to the end.
func (b *Buffer) RotateLeft(s int) {
	n := len(b.cells)
	if n == 0 {
		return
	}
	s = mod(s, n)
	if s == 0 {
		return
	}
	rotated := make([]rune, 0, n)
	rotated = append(rotated, b.cells[s:]...)
	rotated = append(rotated, b.cells[:s]...)
	b.cells = rotated
}

// RotateRight moves the last s mod Len runes to the front.
func (b *Buffer) RotateRight(s int) {
	n := len(b.cells)
	if n == 0 {
		return
	}
	b.RotateLeft(n - mod(s, n))
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
