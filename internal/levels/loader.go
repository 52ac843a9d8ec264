package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.lvl
var builtinFS embed.FS

// builtinNames maps built-in file stems to display names.
var builtinNames = map[string]string{
	"one":   "Standard",
	"two":   "A few small gaps",
	"three": "Space invader",
	"four":  "Bounce galore",
}

// builtinOrder is the play order of the built-in levels.
var builtinOrder = []string{"one", "two", "three", "four"}

// Loader loads level files from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir), Root: dir}
}

// Builtin returns the levels shipped with the game.
func Builtin() ([]Level, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: cannot open built-in levels: %w", err)
	}
	l := &Loader{FS: sub, Root: "builtin"}

	levels := make([]Level, 0, len(builtinOrder))
	for _, stem := range builtinOrder {
		level, err := l.LoadFile(stem + ".lvl")
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// Load returns the built-in levels when dir is empty, otherwise every level
// file in dir.
func Load(dir string) ([]Level, error) {
	if dir == "" {
		return Builtin()
	}
	return NewLoader(dir).LoadAll()
}

// LoadAll loads every supported file in the loader root, sorted by file
// name. Unlike a lenient scan, a broken file fails the whole load: a level
// set with holes would shift every level index.
func (l *Loader) LoadAll() ([]Level, error) {
	entries, err := fs.ReadDir(l.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read %s: %w", l.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(path.Ext(e.Name())) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := l.LoadFile(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", l.Root)
	}
	return levels, nil
}

// LoadFile loads a single level file relative to the loader file system.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return Level{}, fmt.Errorf("levels: cannot read %s: %w", name, err)
	}

	level, err := ParseFile(name, data)
	if err != nil {
		return Level{}, err
	}
	level.FilePath = path.Join(l.Root, name)
	return level, nil
}

// ParseFile parses level data, picking the format from the file extension.
// ID and Name default to the file stem when the format does not carry them.
func ParseFile(name string, data []byte) (Level, error) {
	ext := strings.ToLower(path.Ext(name))
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))

	var level Level
	switch ext {
	case ".lvl", ".txt":
		tiles, err := ParseText(data)
		if err != nil {
			return Level{}, fmt.Errorf("%s: %w", name, err)
		}
		level = Level{Tiles: tiles}
	case ".yaml", ".yml":
		var err error
		level, err = ParseYAML(data)
		if err != nil {
			return Level{}, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return Level{}, fmt.Errorf("levels: unsupported format %q", ext)
	}

	if level.ID == "" {
		level.ID = stem
	}
	if level.Name == "" {
		if n, ok := builtinNames[stem]; ok {
			level.Name = n
		} else {
			level.Name = stem
		}
	}
	return level, nil
}

// isSupportedExtension checks if a file extension is a level format.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".lvl", ".txt", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
