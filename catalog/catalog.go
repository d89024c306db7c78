// Package catalog holds the library data the renderer consumes: categories
// of series, their seasons and episodes, and the flat browse index that
// lets the viewport treat the two-tier structure as one integer space.
package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Episode is one watchable entry
type Episode struct {
	Code     string        `toml:"code"` // SxxEyy
	Title    string        `toml:"title"`
	Duration time.Duration `toml:"duration"`
	Watched  bool          `toml:"watched"`
}

// Season groups episodes by number
type Season struct {
	Number   int       `toml:"number"`
	Episodes []Episode `toml:"episodes"`
}

// Series is one show with its seasons
type Series struct {
	Title   string   `toml:"title"`
	Seasons []Season `toml:"seasons"`
}

// Category is a user-defined grouping of series
type Category struct {
	Name   string   `toml:"name"`
	Series []Series `toml:"series"`
}

// Library is the whole collection
type Library struct {
	Categories []Category `toml:"categories"`
}

// Load reads a library file. A missing file is an empty library, not an
// error; a malformed file is.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Library{}, nil
		}
		return nil, fmt.Errorf("read library %s: %w", path, err)
	}

	var lib Library
	if err := toml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse library %s: %w", path, err)
	}
	return &lib, nil
}

// Save writes the library file atomically via a temp file rename
func (l *Library) Save(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write library %s: %w", path, err)
	}

	enc := toml.NewEncoder(f)
	if err := enc.Encode(l); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode library: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write library %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write library %s: %w", path, err)
	}
	return nil
}
