package scramble

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunMode selects program order and per-step semantics.
type RunMode int

const (
	Forward RunMode = iota
	Backward
)

func (m RunMode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Step describes one applied operation. Before and After are snapshots.
type Step struct {
	Index  int
	Mode   RunMode
	Op     Operation
	Before string
	After  string
}

// Executor runs programs. The zero value is ready to use.
type Executor struct {
	// Strict rejects any RotateByLetter inverse with more than one origin.
	Strict bool
	// Observer, when set, is called after every successful step.
	Observer func(Step)
}

// RunForward applies prog in order to a copy of b.
func RunForward(prog Program, b *Buffer) (*Buffer, error) {
	return Executor{}.Run(Forward, prog, b)
}

// RunBackward undoes prog in reverse order on a copy of b.
func RunBackward(prog Program, b *Buffer) (*Buffer, error) {
	return Executor{}.Run(Backward, prog, b)
}

// Run executes prog against a copy of b. The first failing step aborts the
// run and is returned as a *StepError; no partial buffer is returned.
func (e Executor) Run(mode RunMode, prog Program, b *Buffer) (*Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrIndex)
	}
	out := b.Clone()
	log.Debug().Str("mode", mode.String()).Int("ops", len(prog)).Int("len", out.Len()).Msg("scramble run start")

	for k := range prog {
		index := k
		if mode == Backward {
			index = len(prog) - 1 - k
		}
		op := prog[index]

		var before string
		if e.Observer != nil {
			before = out.String()
		}

		var err error
		switch mode {
		case Forward:
			err = Apply(out, op)
		case Backward:
			err = Revert(out, op, e.Strict)
		default:
			err = fmt.Errorf("%w: run mode %d", ErrUnknownOperation, int(mode))
		}
		if err != nil {
			log.Debug().Err(err).Str("mode", mode.String()).Int("step", index).Msg("scramble run aborted")
			return nil, &StepError{Index: index, Mode: mode, Op: op, Err: err}
		}

		if e.Observer != nil {
			e.Observer(Step{Index: index, Mode: mode, Op: op, Before: before, After: out.String()})
		}
	}

	log.Debug().Str("mode", mode.String()).Str("result", out.String()).Msg("scramble run done")
	return out, nil
}
