package pairfind

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeLine reads a single line of whitespace-separated integers from r.
// The final integer is the target; everything before it is the sequence.
// A lone integer yields an empty sequence with that integer as the target.
// Input with no integers fails with ErrEmptyInput; a token that is not an
// integer fails with ErrInvalidToken. Lines after the first are never read.
func DecodeLine(r io.Reader) ([]int, int, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("read input line: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, 0, ErrEmptyInput
	}

	values := make([]int, 0, len(fields))
	for _, tok := range fields {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
		}

		values = append(values, n)
	}

	last := len(values) - 1

	return values[:last], values[last], nil
}
