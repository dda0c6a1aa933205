// Package samples reads, writes and generates TSP instances: the city
// positions a ring is trained on.
//
// File format:
//
//	3
//	0 0
//	10 0
//	5 8.5
//
// The first line is the city count n, followed by exactly n lines holding
// two whitespace-separated floats. Blank trailing lines are ignored.
package samples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ringsom/vec"
)

// maxPrealloc caps the capacity reserved from an untrusted header count.
const maxPrealloc = 1 << 16

var (
	// ErrMalformed indicates a line that is not a count or an "x y" pair.
	ErrMalformed = errors.New("samples: malformed input")

	// ErrCountMismatch indicates that the number of point lines differs from the header.
	ErrCountMismatch = errors.New("samples: point count does not match header")

	// ErrNoSamples indicates an empty instance.
	ErrNoSamples = errors.New("samples: no samples")

	// ErrBadParameter indicates an invalid generator argument.
	ErrBadParameter = errors.New("samples: bad generator parameter")
)

// Read parses an instance from r.
//
// Errors: ErrMalformed (wrapped with the line number), ErrCountMismatch,
// ErrNoSamples for a header below 1, or the reader's error.
//
// Complexity: O(n).
func Read(r io.Reader) ([]vec.Vector, error) {
	var (
		sc     = bufio.NewScanner(r)
		lineNo int
		want   = -1
		pts    []vec.Vector
		blank  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			blank++
			continue
		}
		if blank > 0 {
			return nil, fmt.Errorf("line %d: blank line inside data: %w", lineNo, ErrMalformed)
		}

		if want < 0 {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: count %q: %w", lineNo, line, ErrMalformed)
			}
			if n < 1 {
				return nil, ErrNoSamples
			}
			want = n
			pts = make([]vec.Vector, 0, min(n, maxPrealloc))
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(pts) == want {
			return nil, fmt.Errorf("line %d: more than %d points: %w", lineNo, want, ErrCountMismatch)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if want < 0 {
		return nil, ErrNoSamples
	}
	if len(pts) != want {
		return nil, fmt.Errorf("%d points, header says %d: %w", len(pts), want, ErrCountMismatch)
	}

	return pts, nil
}

// parsePoint decodes one "x y" line.
func parsePoint(line string) (vec.Vector, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return vec.Vector{}, fmt.Errorf("%q: want 2 fields, got %d: %w", line, len(fields), ErrMalformed)
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	if errX != nil || errY != nil {
		return vec.Vector{}, fmt.Errorf("%q: %w", line, ErrMalformed)
	}
	p := vec.New(x, y)
	if !p.IsFinite() {
		return vec.Vector{}, fmt.Errorf("%q: non-finite coordinate: %w", line, ErrMalformed)
	}

	return p, nil
}

// Load reads an instance from the file at path.
func Load(path string) ([]vec.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// Write encodes pts in the format Read accepts.
func Write(w io.Writer, pts []vec.Vector) error {
	if len(pts) == 0 {
		return ErrNoSamples
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(pts))
	var p vec.Vector
	for _, p = range pts {
		fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64))
	}

	return bw.Flush()
}

// Save writes pts to the file at path, truncating it.
func Save(path string, pts []vec.Vector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, pts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Bounds returns the smallest box containing every point.
func Bounds(pts []vec.Vector) (vec.Box, error) {
	if len(pts) == 0 {
		return vec.Box{}, ErrNoSamples
	}
	b := vec.BoxAt(pts[0])
	var p vec.Vector
	for _, p = range pts[1:] {
		b = b.Extend(p)
	}

	return b, nil
}
