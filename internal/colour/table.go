package colour

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wheelibin/kasactl/internal/models"
)

var White = models.RGB{R: 255, G: 255, B: 255}

var ErrInvalidColour = errors.New("invalid color input, must be a color name or RGB triple")

// Table maps colour names (case-sensitive) to RGB values.
type Table map[string]models.RGB

// LoadTable reads a colour table from a CSV file whose first row is a header
// and whose rows are name,r,g,b.
func LoadTable(filename string) (Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening colors file: %w", err)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("error reading colors file %s: %w", filename, err)
	}
	return table, nil
}

func ReadTable(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// skip header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return nil, err
	}

	table := Table{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if len(row) < 4 {
			return nil, fmt.Errorf("line %d: expected name,r,g,b but got %d fields", line, len(row))
		}

		channels := [3]uint8{}
		for i, field := range row[1:4] {
			v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid channel value %q: %w", line, field, err)
			}
			channels[i] = uint8(v)
		}
		table[strings.TrimSpace(row[0])] = models.RGB{R: channels[0], G: channels[1], B: channels[2]}
	}

	return table, nil
}

// Lookup returns the named colour, or white if the name is unknown.
func (t Table) Lookup(name string) models.RGB {
	if c, ok := t[name]; ok {
		return c
	}
	return White
}

// Hex formats c as #rrggbb.
func Hex(c models.RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}
