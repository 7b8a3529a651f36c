package presets

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wheelibin/kasactl/internal/colour"
)

// a single instruction in a preset: set the bulb with this alias to this colour
type Entry struct {
	Name  string     `json:"name"`
	Color colour.Ref `json:"color"`
}

// Table maps preset names to their ordered entries.
type Table map[string][]Entry

func Load(filename string) (Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening presets file: %w", err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading presets file %s: %w", filename, err)
	}
	return table, nil
}

func Read(r io.Reader) (Table, error) {
	table := Table{}
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return nil, err
	}
	return table, nil
}

// Get returns the entries of the named preset. Names are case-sensitive.
func (t Table) Get(name string) ([]Entry, bool) {
	entries, ok := t[name]
	if !ok || len(entries) == 0 {
		return nil, false
	}
	return entries, true
}
