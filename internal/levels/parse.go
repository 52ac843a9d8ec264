// Package levels loads brick layouts. A layout is a rectangular grid of
// tile codes: 0 empty, 1 solid, 2 and above destructible bricks.
package levels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyLevel is returned for a layout without any row.
	ErrEmptyLevel = errors.New("levels: level has no rows")
	// ErrRaggedRow is returned when rows differ in length.
	ErrRaggedRow = errors.New("levels: rows differ in length")
)

// Tile codes with a fixed meaning.
const (
	TileEmpty uint = 0
	TileSolid uint = 1
)

// Level is a named brick layout.
type Level struct {
	ID       string
	Name     string
	Tiles    [][]uint
	FilePath string
}

// Rows returns the number of tile rows.
func (l *Level) Rows() int {
	return len(l.Tiles)
}

// Cols returns the number of tile columns.
func (l *Level) Cols() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Count returns how many destructible and solid bricks the layout has.
func (l *Level) Count() (destructible, solid int) {
	for _, row := range l.Tiles {
		for _, code := range row {
			switch {
			case code == TileSolid:
				solid++
			case code > TileSolid:
				destructible++
			}
		}
	}
	return destructible, solid
}

// Info is a one-line summary of a level.
type Info struct {
	ID           string
	Name         string
	Rows, Cols   int
	Destructible int
	Solid        int
}

// Info summarizes the level for listings.
func (l *Level) Info() Info {
	destructible, solid := l.Count()
	return Info{
		ID:           l.ID,
		Name:         l.Name,
		Rows:         l.Rows(),
		Cols:         l.Cols(),
		Destructible: destructible,
		Solid:        solid,
	}
}

// Validate checks the layout is non-empty and rectangular.
func (l *Level) Validate() error {
	if len(l.Tiles) == 0 || len(l.Tiles[0]) == 0 {
		return ErrEmptyLevel
	}
	width := len(l.Tiles[0])
	for i, row := range l.Tiles {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrRaggedRow, i+1, len(row), width)
		}
	}
	return nil
}

// ParseText parses the plain .lvl format: one row per line, tile codes
// separated by whitespace. Blank lines are ignored.
func ParseText(data []byte) ([][]uint, error) {
	var tiles [][]uint

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]uint, 0, len(fields))
		for _, f := range fields {
			code, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("levels: line %d: bad tile %q: %w", line, f, err)
			}
			row = append(row, uint(code))
		}
		tiles = append(tiles, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read: %w", err)
	}

	l := Level{Tiles: tiles}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return tiles, nil
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Tiles [][]uint `yaml:"tiles"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	level := Level{ID: yl.ID, Name: yl.Name, Tiles: yl.Tiles}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// FormatText encodes tiles in the .lvl format.
func FormatText(tiles [][]uint) []byte {
	var buf bytes.Buffer
	for _, row := range tiles {
		for i, code := range row {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(strconv.FormatUint(uint64(code), 10))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
