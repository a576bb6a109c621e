// Package seedfile parses the plain-text tessellation input:
//
//	<X> <Y>      grid width and height
//	<N>          seed count
//	<x> <y>      N lines, one seed per line
//
// Blank lines are skipped. Bounds against the grid are not checked here;
// voronoi.NewGrid does that.
package seedfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/voronoi"
)

// maxSeedHint caps the seed slice preallocation.
const maxSeedHint = 1 << 16

// ErrMalformed is wrapped by every ParseError.
var ErrMalformed = errors.New("seedfile: malformed input")

// ParseError locates a syntax problem in the input.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "seedfile: " + e.Msg
	}
	return fmt.Sprintf("seedfile: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Input is a parsed seed file.
type Input struct {
	Size  voronoi.Point
	Seeds []voronoi.Point
}

// Load reads and parses the file at path.
func Load(path string) (*Input, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("seedfile: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads an input description from r.
func Parse(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	line := 0

	// next returns the fields of the next non-blank line, or nil at EOF.
	next := func() ([]string, error) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, nil
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("seedfile: read: %w", err)
		}
		return nil, nil
	}

	fields, err := next()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, &ParseError{Msg: "missing grid size"}
	}
	size, err := pair(fields, line, "grid size")
	if err != nil {
		return nil, err
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("grid size must be positive, got %d %d", size.X, size.Y)}
	}

	fields, err = next()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, &ParseError{Msg: "missing seed count"}
	}
	if len(fields) != 1 {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("seed count: want 1 value, got %d", len(fields))}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("seed count: invalid value %q", fields[0])}
	}

	// n is untrusted; the count check below reports short files.
	in := &Input{Size: size, Seeds: make([]voronoi.Point, 0, min(n, maxSeedHint))}
	for len(in.Seeds) < n {
		fields, err = next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return nil, &ParseError{Msg: fmt.Sprintf("expected %d seeds, found %d", n, len(in.Seeds))}
		}
		p, err := pair(fields, line, "seed")
		if err != nil {
			return nil, err
		}
		in.Seeds = append(in.Seeds, p)
	}

	fields, err = next()
	if err != nil {
		return nil, err
	}
	if fields != nil {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("unexpected data after %d seeds", n)}
	}
	return in, nil
}

// pair parses two non-negative integers.
func pair(fields []string, line int, what string) (voronoi.Point, error) {
	if len(fields) != 2 {
		return voronoi.Point{}, &ParseError{Line: line, Msg: fmt.Sprintf("%s: want 2 values, got %d", what, len(fields))}
	}
	var v [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return voronoi.Point{}, &ParseError{Line: line, Msg: fmt.Sprintf("%s: invalid value %q", what, f)}
		}
		v[i] = n
	}
	return voronoi.Pt(v[0], v[1]), nil
}
