package ngram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load parses a corpus in "<ngram> <count>" format and builds a Model.
//
// Errors:
//   - ErrIO on read failure.
//   - ErrParse (with the 1-based line number) on a malformed line.
//   - ErrDegenerateModel on an empty table or mixed gram widths.
func Load(r io.Reader, opts ...Option) (*Model, error) {
	var (
		counts = make(map[string]int64)
		sc     = bufio.NewScanner(r)
		lineNo int
		width  int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrParse, lineNo, len(fields))
		}

		gram := fields[0]
		if !isLetters(gram) {
			return nil, fmt.Errorf("%w: line %d: gram %q is not letters only", ErrParse, lineNo, gram)
		}
		c, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || c <= 0 {
			return nil, fmt.Errorf("%w: line %d: count %q is not a positive integer", ErrParse, lineNo, fields[1])
		}

		if width == 0 {
			width = len(gram)
		} else if len(gram) != width {
			return nil, fmt.Errorf("%w: line %d: gram %q has width %d, want %d",
				ErrDegenerateModel, lineNo, gram, len(gram), width)
		}
		counts[strings.ToUpper(gram)] += c
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrDegenerateModel)
	}

	return fromCounts(counts, width, gatherOptions(opts)), nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	m, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
