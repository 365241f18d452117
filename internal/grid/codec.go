package grid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for grid files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("grid file must be .yaml, .yml or .toml")

// Document is the on-disk form of a grid.
//
// YAML files may write a gap as null or as {gap: true}; TOML has no null, so
// TOML files use {gap = true}.
type Document struct {
	Name  string       `yaml:"name" toml:"name"`
	Start string       `yaml:"start" toml:"start"` // "YYYY-MM-DD" or "YYYY-MM-DD HH:MM"
	Unit  string       `yaml:"unit" toml:"unit"`   // e.g. "15m"
	Days  [][]*CellDoc `yaml:"days" toml:"days"`
}

// CellDoc is one cell in a Document.
type CellDoc struct {
	Gap      bool   `yaml:"gap,omitempty" toml:"gap,omitempty"`
	Number   any    `yaml:"number,omitempty" toml:"number,omitempty"`
	ID       any    `yaml:"id,omitempty" toml:"id,omitempty"`
	Reserved bool   `yaml:"reserved,omitempty" toml:"reserved,omitempty"`
	Selected bool   `yaml:"selected,omitempty" toml:"selected,omitempty"`
	Periods  int    `yaml:"periods,omitempty" toml:"periods,omitempty"`
	Note     string `yaml:"note,omitempty" toml:"note,omitempty"`
}

// DecodeFile reads a grid from a YAML or TOML file, chosen by extension.
func DecodeFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid file: %w", err)
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing grid yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing grid toml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc.Grid()
}

// Grid converts the document into a validated Grid.
func (d *Document) Grid() (*Grid, error) {
	g := &Grid{Name: d.Name}

	if d.Start != "" {
		start, err := parseStart(d.Start)
		if err != nil {
			return nil, err
		}
		g.Start = start
	}
	if d.Unit != "" {
		unit, err := time.ParseDuration(d.Unit)
		if err != nil {
			return nil, fmt.Errorf("parsing unit %q: %w", d.Unit, err)
		}
		g.Unit = unit
	}

	for _, cells := range d.Days {
		day := make(Day, 0, len(cells))
		for _, c := range cells {
			if c == nil || c.Gap {
				day = append(day, Gap{})
				continue
			}
			day = append(day, Slot{
				ID:       scalarString(c.ID),
				Number:   scalarString(c.Number),
				Reserved: c.Reserved,
				Selected: c.Selected,
				Periods:  c.Periods,
			})
		}
		g.Days = append(g.Days, day)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewDocument converts a grid back into its document form.
func NewDocument(g *Grid) *Document {
	d := &Document{Name: g.Name}
	if !g.Start.IsZero() {
		d.Start = g.Start.Format("2006-01-02 15:04")
	}
	if g.Unit > 0 {
		d.Unit = g.Unit.String()
	}
	for _, day := range g.Days {
		cells := make([]*CellDoc, 0, len(day))
		for _, c := range day {
			s, ok := c.(Slot)
			if !ok {
				cells = append(cells, &CellDoc{Gap: true})
				continue
			}
			cd := &CellDoc{
				Number:   s.Number,
				Reserved: s.Reserved,
				Selected: s.Selected,
				Periods:  s.Periods,
			}
			if s.ID != "" {
				cd.ID = s.ID
			}
			cells = append(cells, cd)
		}
		d.Days = append(d.Days, cells)
	}
	return d
}

func parseStart(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing start %q: expected YYYY-MM-DD [HH:MM]", s)
}

// scalarString renders a YAML/TOML scalar (string, integer, float) as text.
func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprint(x)
	default:
		return fmt.Sprint(x)
	}
}
