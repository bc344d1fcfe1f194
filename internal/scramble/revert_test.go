package scramble

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/scramblectl/internal/testutil/testlog"
)

func TestRevertUndoesApply(t *testing.T) {
	testlog.Start(t)
	ops := []Operation{
		SwapPosition{X: 0, Y: 7},
		SwapLetter{A: 'c', B: 'h'},
		ReverseRange{Lo: 1, Hi: 5},
		RotateFixed{Direction: Left, Steps: 3},
		RotateFixed{Direction: Right, Steps: 11},
		MovePosition{From: 2, To: 7},
		MovePosition{From: 7, To: 0},
		RotateByLetter{Letter: 'a'},
		RotateByLetter{Letter: 'h'},
	}
	for _, op := range ops {
		b := NewBuffer("abcdefgh")
		if err := Apply(b, op); err != nil {
			t.Fatalf("apply %s: %v", op, err)
		}
		if err := Revert(b, op, true); err != nil {
			t.Fatalf("revert %s: %v", op, err)
		}
		if b.String() != "abcdefgh" {
			t.Fatalf("revert %s: got %q", op, b.String())
		}
	}
}

func TestRotateFixedInverseAllSteps(t *testing.T) {
	testlog.Start(t)
	in := NewBuffer("abcdefg")
	for s := 0; s < in.Len(); s++ {
		left, err := RunForward(Program{RotateFixed{Direction: Left, Steps: s}}, in)
		if err != nil {
			t.Fatalf("left %d: %v", s, err)
		}
		back, err := RunForward(Program{RotateFixed{Direction: Right, Steps: s}}, left)
		if err != nil {
			t.Fatalf("right %d: %v", s, err)
		}
		if back.String() != in.String() {
			t.Fatalf("steps=%d: got %q", s, back.String())
		}
	}
}

func TestLetterOriginUniqueForEight(t *testing.T) {
	testlog.Start(t)
	const n = 8
	seen := make(map[int]int, n)
	for p := 0; p < n; p++ {
		q := letterTarget(p, n)
		if prev, ok := seen[q]; ok {
			t.Fatalf("origins %d and %d both land on %d", prev, p, q)
		}
		seen[q] = p
	}
	for q := 0; q < n; q++ {
		got := letterOrigins(q, n)
		if !reflect.DeepEqual(got, []int{seen[q]}) {
			t.Fatalf("q=%d: origins %v want [%d]", q, got, seen[q])
		}
		if p := parityOrigin(q, n); p != seen[q] {
			t.Fatalf("q=%d: parity origin %d want %d", q, p, seen[q])
		}
	}
}

func TestRevertLetterRotationShortBuffer(t *testing.T) {
	testlog.Start(t)
	for _, s := range []string{"a", "ab", "abcd"} {
		b := NewBuffer(s)
		err := Revert(b, RotateByLetter{Letter: 'a'}, false)
		if !errors.Is(err, ErrAmbiguousInverse) {
			t.Fatalf("%q: expected ErrAmbiguousInverse, got %v", s, err)
		}
		if b.String() != s {
			t.Fatalf("%q: failed revert mutated buffer to %q", s, b.String())
		}
	}
}

func TestRevertLetterRotationTieBreak(t *testing.T) {
	testlog.Start(t)
	// At length 5 origins 2 and 4 both land on 0.
	if got := letterOrigins(0, 5); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("unexpected origins: %v", got)
	}

	b := NewBuffer("decab")
	if err := Revert(b, RotateByLetter{Letter: 'd'}, false); err != nil {
		t.Fatalf("revert: %v", err)
	}
	if b.String() != "ecabd" {
		t.Fatalf("unexpected tie-break result: %q", b.String())
	}

	strict := NewBuffer("decab")
	err := Revert(strict, RotateByLetter{Letter: 'd'}, true)
	if !errors.Is(err, ErrAmbiguousInverse) {
		t.Fatalf("expected ErrAmbiguousInverse in strict mode, got %v", err)
	}
	if strict.String() != "decab" {
		t.Fatalf("strict failure mutated buffer to %q", strict.String())
	}
}

func TestRevertLetterRotationNoOrigin(t *testing.T) {
	testlog.Start(t)
	// At length 6 no origin lands on 2.
	if got := letterOrigins(2, 6); len(got) != 0 {
		t.Fatalf("unexpected origins: %v", got)
	}
	b := NewBuffer("abcdef")
	if err := Revert(b, RotateByLetter{Letter: 'c'}, false); !errors.Is(err, ErrAmbiguousInverse) {
		t.Fatalf("expected ErrAmbiguousInverse, got %v", err)
	}
}
