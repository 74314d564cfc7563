package ngram

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// Count reads corpus text from r and counts every n-letter window of its
// canonical form. Line breaks and punctuation do not interrupt windows:
// "AB\nCD" yields ABC and BCD for n=3.
//
// Errors: ErrBadWidth for n < 1, ErrIO on read failure.
//
// Complexity: O(len(corpus)) time, O(distinct grams) space.
func Count(r io.Reader, n int) (map[string]int64, error) {
	if n < 1 {
		return nil, ErrBadWidth
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var (
		c      = alphabet.Canonicalize(string(raw))
		counts = make(map[string]int64)
		i      int
	)
	for i = 0; i+n <= len(c); i++ {
		counts[c[i:i+n]]++
	}
	return counts, nil
}

// Build is Count followed by New. A corpus shorter than n letters yields
// ErrDegenerateModel.
func Build(r io.Reader, n int, opts ...Option) (*Model, error) {
	counts, err := Count(r, n)
	if err != nil {
		return nil, err
	}
	return New(counts, opts...)
}

// WriteTo writes the table in corpus format, most frequent gram first and
// ties broken alphabetically, so output is stable. It implements io.WriterTo.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	grams := make([]string, 0, len(m.counts))
	for g := range m.counts {
		grams = append(grams, g)
	}
	slices.SortFunc(grams, func(a, b string) int {
		ca, cb := m.counts[a], m.counts[b]
		switch {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})

	var (
		bw      = bufio.NewWriter(w)
		written int64
		k       int
		err     error
		line    []byte
	)
	for _, g := range grams {
		line = line[:0]
		line = append(line, g...)
		line = append(line, ' ')
		line = strconv.AppendInt(line, m.counts[g], 10)
		line = append(line, '\n')
		k, err = bw.Write(line)
		written += int64(k)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
