// Package input reads a partition problem in its line-based text form:
//
//	n
//	a b c
//	x_1 x_2 … x_n
//
// Every line must carry exactly the expected number of integer tokens.
// The third line may be omitted when n is 0.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpart/partition"
)

// maxLineBytes bounds a single input line (the sequence line can be long).
const maxLineBytes = 64 << 20

var (
	// ErrMissingLine is returned when the input ends before a required line.
	ErrMissingLine = errors.New("input: missing line")

	// ErrTokenCount is returned when a line has the wrong number of tokens.
	ErrTokenCount = errors.New("input: wrong number of tokens")

	// ErrBadToken is returned when a token is not a base-10 int64.
	ErrBadToken = errors.New("input: token is not an integer")

	// ErrNegativeLength is returned when n < 0.
	ErrNegativeLength = errors.New("input: sequence length is negative")
)

// Problem is a parsed instance.
type Problem struct {
	Cost partition.Cost
	Seq  []int64
}

// Parse reads a Problem from r. Errors carry the 1-based line number.
func Parse(r io.Reader) (Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	line := 0

	next := func(what string, want int) ([]int64, error) {
		line++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("input: line %d (%s): %w", line, what, err)
			}

			return nil, fmt.Errorf("%w %d (%s)", ErrMissingLine, line, what)
		}

		return parseInts(sc.Text(), want, line, what)
	}

	head, err := next("n", 1)
	if err != nil {
		return Problem{}, err
	}
	n := head[0]
	if n < 0 {
		return Problem{}, fmt.Errorf("%w: line 1: %d", ErrNegativeLength, n)
	}

	abc, err := next("a b c", 3)
	if err != nil {
		return Problem{}, err
	}
	p := Problem{Cost: partition.Cost{A: abc[0], B: abc[1], C: abc[2]}}

	if n == 0 {
		p.Seq = []int64{}

		return p, nil
	}
	if p.Seq, err = next("sequence", int(n)); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// parseInts splits text on whitespace and requires exactly want int64 tokens.
func parseInts(text string, want, line int, what string) ([]int64, error) {
	fields := strings.Fields(text)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: line %d (%s): want %d, got %d", ErrTokenCount, line, what, want, len(fields))
	}
	out := make([]int64, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d (%s) token %d %q: %w", ErrBadToken, line, what, k+1, f, err)
		}
		out[k] = v
	}

	return out, nil
}
