// Package places provides the named-place catalog used by the command line
// tools, stored as a TOML file. A place pairs a name with coordinates and an
// optional IANA zone; the catalog file is plain enough to edit by hand.
package places

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultPath is the conventional location for the place catalog, relative
// to the user's home directory.
const DefaultPath = ".sunmoon/places.toml"

// Place is one named observing site.
type Place struct {
	Name string  `toml:"name"`
	Lat  float64 `toml:"lat"`
	Lon  float64 `toml:"lon"`
	Zone string  `toml:"zone,omitempty"`
}

// Location resolves the place's zone name. An empty Zone means UTC.
func (p Place) Location() (*time.Location, error) {
	if p.Zone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(p.Zone)
	if err != nil {
		return nil, fmt.Errorf("resolving zone of %q: %w", p.Name, err)
	}
	return loc, nil
}

// Validate checks the place for values the computations could not use.
func (p Place) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("place has no name")
	}
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("place %q: latitude %v out of [-90, 90]", p.Name, p.Lat)
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("place %q: longitude %v out of [-180, 180]", p.Name, p.Lon)
	}
	if _, err := p.Location(); err != nil {
		return err
	}
	return nil
}

// Catalog is the root document of the place catalog file.
type Catalog struct {
	Places []Place `toml:"place"`
}

// Load reads a place catalog from the given path. If the file does not
// exist, it returns an empty Catalog and no error, so first runs work
// without any setup.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("reading place catalog: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing place catalog: %w", err)
	}
	return &c, nil
}

// Save writes the place catalog to the given path, creating parent
// directories as needed.
func Save(path string, c *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling place catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing place catalog: %w", err)
	}
	return nil
}

// Find returns the named place. Matching is case-insensitive.
func (c *Catalog) Find(name string) (Place, bool) {
	for _, p := range c.Places {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Place{}, false
}

// Add inserts a place, replacing any existing entry with the same name.
func (c *Catalog) Add(p Place) {
	for i := range c.Places {
		if strings.EqualFold(c.Places[i].Name, p.Name) {
			c.Places[i] = p
			return
		}
	}
	c.Places = append(c.Places, p)
}

// Remove deletes the named place and reports whether it was present.
func (c *Catalog) Remove(name string) bool {
	for i := range c.Places {
		if strings.EqualFold(c.Places[i].Name, name) {
			c.Places = append(c.Places[:i], c.Places[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the catalog's place names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Places))
	for _, p := range c.Places {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
