package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePattern(t *testing.T) {
	pattern := strings.Join([]string{
		"# glider",
		"_O_",
		"..O",
		"OOO",
	}, "\n")

	points, err := ParsePattern(strings.NewReader(pattern))
	if err != nil {
		t.Fatalf("ParsePattern failed: %v", err)
	}

	want := map[Point]bool{
		{Row: 0, Col: 1}: true,
		{Row: 1, Col: 2}: true,
		{Row: 2, Col: 0}: true,
		{Row: 2, Col: 1}: true,
		{Row: 2, Col: 2}: true,
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(points), len(want), points)
	}
	for _, p := range points {
		if !want[p] {
			t.Errorf("unexpected live point %v", p)
		}
	}
}

func TestParsePatternMatchesGlider(t *testing.T) {
	pattern := "_O_\n__O\nOOO\n"
	points, err := ParsePattern(strings.NewReader(pattern))
	if err != nil {
		t.Fatalf("ParsePattern failed: %v", err)
	}

	want := map[Point]bool{}
	for _, p := range Glider(0, 0) {
		want[p] = true
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for _, p := range points {
		if !want[p] {
			t.Errorf("point %v not part of the glider", p)
		}
	}
}

func TestParsePatternRejectsUnknownGlyph(t *testing.T) {
	if _, err := ParsePattern(strings.NewReader("_O_\n_X_\n")); err == nil {
		t.Fatal("unknown glyph should be an error")
	}
}

func TestParsePatternAllowsRaggedLines(t *testing.T) {
	points, err := ParsePattern(strings.NewReader("O\n___O\n"))
	if err != nil {
		t.Fatalf("ParsePattern failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
}

func TestLoadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("# blinker\nOOO\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	points, err := LoadPattern(path)
	if err != nil {
		t.Fatalf("LoadPattern failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
}

func TestLoadPatternMissingFile(t *testing.T) {
	if _, err := LoadPattern(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("missing pattern file should be an error")
	}
}

func TestBlinkerShape(t *testing.T) {
	points := Blinker(2, 1)
	want := []Point{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}
