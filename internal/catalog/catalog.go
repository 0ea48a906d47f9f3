// Package catalog provides the read-only stretch library.
//
// The built-in library is an embedded YAML document. A user file in the same
// format may replace it entirely via LoadFile.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stretches.yaml
var builtinYAML []byte

// OtherTag groups stretches that carry no tag.
const OtherTag = "Other"

// BodySystemOrder is the display order of the known body-system tags.
// Tags not listed here follow in alphabetical order.
var BodySystemOrder = []string{
	"Neck",
	"Shoulders & Chest",
	"Spine & Back",
	"Hips & Glutes",
	"Hamstrings & Legs",
	"Full Body / Flow",
}

// ErrDuplicateID is returned when a catalog document lists the same id twice.
var ErrDuplicateID = errors.New("duplicate stretch id")

// ErrMissingID is returned when a catalog entry has no id.
var ErrMissingID = errors.New("stretch id is required")

// Stretch is a single library entry. Duration is the default hold in
// seconds; zero means the stretch has no default.
type Stretch struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Duration     int      `yaml:"duration,omitempty"`
	Photo        string   `yaml:"photo,omitempty"`
	Tags         []string `yaml:"tags,omitempty"`
	Instructions string   `yaml:"instructions,omitempty"`
}

type document struct {
	Stretches []Stretch `yaml:"stretches"`
}

// Catalog is an immutable ordered list of stretches indexed by id.
type Catalog struct {
	stretches []Stretch
	byID      map[string]int
}

// Group is one tag section of the library.
type Group struct {
	Tag       string
	Stretches []Stretch
}

// Default returns the built-in library. It panics if the embedded document
// is malformed, which can only happen through a broken build.
func Default() *Catalog {
	c, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in library: %v", err))
	}
	return c
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return New(doc.Stretches)
}

// New builds a catalog from stretches, preserving their order.
func New(stretches []Stretch) (*Catalog, error) {
	c := &Catalog{
		stretches: make([]Stretch, 0, len(stretches)),
		byID:      make(map[string]int, len(stretches)),
	}
	for _, s := range stretches {
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			return nil, ErrMissingID
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		if s.Duration < 0 {
			s.Duration = 0
		}
		s.Tags = append([]string(nil), s.Tags...)
		c.byID[s.ID] = len(c.stretches)
		c.stretches = append(c.stretches, s)
	}
	return c, nil
}

// StretchByID returns the stretch with the given id.
func (c *Catalog) StretchByID(id string) (Stretch, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Stretch{}, false
	}
	return c.stretches[i], true
}

// All returns a copy of the library in catalog order.
func (c *Catalog) All() []Stretch {
	return append([]Stretch(nil), c.stretches...)
}

// Len returns the number of stretches.
func (c *Catalog) Len() int {
	return len(c.stretches)
}

// First returns the first stretch of the library, if any.
func (c *Catalog) First() (Stretch, bool) {
	if len(c.stretches) == 0 {
		return Stretch{}, false
	}
	return c.stretches[0], true
}

// Grouped returns the library split by tag. A stretch with several tags
// appears in each of them; untagged stretches land in OtherTag.
func (c *Catalog) Grouped() []Group {
	groups := make(map[string][]Stretch)
	for _, s := range c.stretches {
		tags := s.Tags
		if len(tags) == 0 {
			tags = []string{OtherTag}
		}
		for _, tag := range tags {
			groups[tag] = append(groups[tag], s)
		}
	}

	known := make(map[string]bool, len(BodySystemOrder))
	var result []Group
	for _, tag := range BodySystemOrder {
		known[tag] = true
		if len(groups[tag]) > 0 {
			result = append(result, Group{Tag: tag, Stretches: groups[tag]})
		}
	}

	var rest []string
	for tag := range groups {
		if !known[tag] {
			rest = append(rest, tag)
		}
	}
	sort.Strings(rest)
	for _, tag := range rest {
		result = append(result, Group{Tag: tag, Stretches: groups[tag]})
	}
	return result
}

// WithTag returns the stretches carrying tag, compared case-insensitively.
func (c *Catalog) WithTag(tag string) []Stretch {
	var result []Stretch
	for _, s := range c.stretches {
		for _, t := range s.Tags {
			if strings.EqualFold(t, tag) {
				result = append(result, s)
				break
			}
		}
	}
	return result
}
