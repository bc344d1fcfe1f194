package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/danmuck/scramblectl/internal/scramble"
)

var ErrSyntax = errors.New("script: unrecognized instruction")

// LineError reports the program line that failed to parse. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

var (
	swapPositionPattern   = regexp.MustCompile(`^swap position (\d+) with position (\d+)$`)
	swapLetterPattern     = regexp.MustCompile(`^swap letter (\p{Ll}) with letter (\p{Ll})$`)
	reversePattern        = regexp.MustCompile(`^reverse positions (\d+) through (\d+)$`)
	rotatePattern         = regexp.MustCompile(`^rotate (left|right) (\d+) steps?$`)
	rotateByLetterPattern = regexp.MustCompile(`^rotate based on position of letter (\p{Ll})$`)
	movePattern           = regexp.MustCompile(`^move position (\d+) to position (\d+)$`)
)

// ParseLine parses one instruction. Surrounding whitespace is ignored.
func ParseLine(line string) (scramble.Operation, error) {
	line = strings.TrimSpace(line)
	if m := swapPositionPattern.FindStringSubmatch(line); m != nil {
		x, y, err := twoInts(m[1], m[2])
		if err != nil {
			return nil, err
		}
		return scramble.SwapPosition{X: x, Y: y}, nil
	}
	if m := swapLetterPattern.FindStringSubmatch(line); m != nil {
		return scramble.SwapLetter{A: firstRune(m[1]), B: firstRune(m[2])}, nil
	}
	if m := reversePattern.FindStringSubmatch(line); m != nil {
		lo, hi, err := twoInts(m[1], m[2])
		if err != nil {
			return nil, err
		}
		return scramble.ReverseRange{Lo: lo, Hi: hi}, nil
	}
	if m := rotatePattern.FindStringSubmatch(line); m != nil {
		steps, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		dir := scramble.Left
		if m[1] == "right" {
			dir = scramble.Right
		}
		return scramble.RotateFixed{Direction: dir, Steps: steps}, nil
	}
	if m := rotateByLetterPattern.FindStringSubmatch(line); m != nil {
		return scramble.RotateByLetter{Letter: firstRune(m[1])}, nil
	}
	if m := movePattern.FindStringSubmatch(line); m != nil {
		from, to, err := twoInts(m[1], m[2])
		if err != nil {
			return nil, err
		}
		return scramble.MovePosition{From: from, To: to}, nil
	}
	return nil, ErrSyntax
}

// Parse reads one instruction per line. Blank lines and lines starting
// with '#' are skipped.
func Parse(r io.Reader) (scramble.Program, error) {
	sc := bufio.NewScanner(r)
	prog := make(scramble.Program, 0, 16)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := ParseLine(text)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: text, Err: err}
		}
		prog = append(prog, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	return prog, nil
}

// ParseString is Parse over an in-memory program.
func ParseString(s string) (scramble.Program, error) {
	return Parse(strings.NewReader(s))
}

// Format renders prog with one canonical instruction per line.
func Format(prog scramble.Program) string {
	var b strings.Builder
	for _, op := range prog {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func twoInts(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return x, y, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
