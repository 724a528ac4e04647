package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// readFailureLine is the position reported for every read failure. Tokens are
// scanned as a whitespace-separated stream, so no true line is tracked.
const readFailureLine = 1

// errShortInput is returned when the stream ends before enough integers were read.
var errShortInput = errors.New("unexpected end of input")

// scanInts reads exactly n whitespace-separated decimal integers from r.
// Anything after the n-th token is left unread.
func scanInts(r io.Reader, n int) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	out := make([]int64, 0, n)
	for len(out) < n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, errShortInput
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatResult renders v as it is stored on disk: decimal digits and a newline.
func FormatResult(v int64) string {
	return strconv.FormatInt(v, 10) + "\n"
}
