package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	liveSlot = 'O'
)

// Glider returns the five-cell glider pattern with its bounding box
// anchored at (top, left). It translates one cell down and right every
// four generations.
func Glider(top, left int) []Point {
	return []Point{
		{Row: top, Col: left + 1},
		{Row: top + 1, Col: left + 2},
		{Row: top + 2, Col: left},
		{Row: top + 2, Col: left + 1},
		{Row: top + 2, Col: left + 2},
	}
}

// Blinker returns the three-cell row oscillator starting at (row, left).
func Blinker(row, left int) []Point {
	return []Point{
		{Row: row, Col: left},
		{Row: row, Col: left + 1},
		{Row: row, Col: left + 2},
	}
}

/*
ParsePattern reads a plaintext seed description: 'O' marks a live cell,
'_', '.' and space mark dead cells, and lines starting with '#' are
comments. Row and column indexes come straight from line and character
positions, so the pattern lands at the grid origin; lines may be ragged.
*/
func ParsePattern(r io.Reader) ([]Point, error) {
	var (
		points []Point
		row    int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for col, glyph := range line {
			switch glyph {
			case liveSlot:
				points = append(points, Point{Row: row, Col: col})
			case '_', '.', ' ':
			default:
				return nil, errors.Errorf("[ParsePattern] unexpected %q at row %d col %d", glyph, row, col)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] failed to read pattern")
	}
	return points, nil
}

// LoadPattern parses a pattern file from disk.
func LoadPattern(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open file: %+v", path)
	}
	defer f.Close()

	points, err := ParsePattern(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] %v", path)
	}
	return points, nil
}
