package services

import (
	"fmt"
	"slices"
	"strings"

	"career-roadmap/models/career"
)

// CatalogError reports a career path that can't be part of a catalog.
type CatalogError struct {
	Key    string
	Reason string
}

func (e *CatalogError) Error() string {
	if e.Key == "" {
		return "invalid catalog: " + e.Reason
	}
	return fmt.Sprintf("invalid catalog entry %q: %s", e.Key, e.Reason)
}

// Catalog is the read-only set of career paths offered to users.
// It is never modified after NewCatalog returns, so it can be shared
// between requests without locking.
type Catalog struct {
	paths []career.CareerPath
	index map[string]int
}

// NewCatalog validates paths and copies them into a Catalog, keeping their order.
func NewCatalog(paths []career.CareerPath) (*Catalog, error) {
	if len(paths) == 0 {
		return nil, &CatalogError{Reason: "no career paths"}
	}

	c := &Catalog{
		paths: make([]career.CareerPath, 0, len(paths)),
		index: make(map[string]int, len(paths)),
	}
	for i, p := range paths {
		key := strings.TrimSpace(p.Key)
		switch {
		case key == "":
			return nil, &CatalogError{Reason: fmt.Sprintf("career path #%d has no key", i+1)}
		case strings.TrimSpace(p.Title) == "":
			return nil, &CatalogError{Key: key, Reason: "missing title"}
		case len(p.Phases) == 0:
			return nil, &CatalogError{Key: key, Reason: "no phases"}
		}
		if _, dup := c.index[key]; dup {
			return nil, &CatalogError{Key: key, Reason: "duplicate key"}
		}
		for j, ph := range p.Phases {
			if strings.TrimSpace(ph.Name) == "" {
				return nil, &CatalogError{Key: key, Reason: fmt.Sprintf("phase #%d has no name", j+1)}
			}
		}

		c.index[key] = len(c.paths)
		c.paths = append(c.paths, career.CareerPath{
			Key:    key,
			Title:  p.Title,
			Phases: slices.Clone(p.Phases),
		})
	}
	return c, nil
}

// Lookup returns the career path stored under key.
func (c *Catalog) Lookup(key string) (career.CareerPath, bool) {
	i, ok := c.index[key]
	if !ok {
		return career.CareerPath{}, false
	}
	return clonePath(c.paths[i]), true
}

// Paths returns every career path in catalog order.
func (c *Catalog) Paths() []career.CareerPath {
	out := make([]career.CareerPath, len(c.paths))
	for i, p := range c.paths {
		out[i] = clonePath(p)
	}
	return out
}

func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.paths))
	for i, p := range c.paths {
		keys[i] = p.Key
	}
	return keys
}

func (c *Catalog) Len() int { return len(c.paths) }

// Has reports whether key names a career path.
func (c *Catalog) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Roadmap looks up key and spreads totalMonths over its phases.
// ok is false when the key is unknown. A positive maxMonths caps the
// duration; exceeding it is an InvalidDurationError.
func (c *Catalog) Roadmap(key string, totalMonths, maxMonths int) (roadmap career.Roadmap, ok bool, err error) {
	path, ok := c.Lookup(key)
	if !ok {
		return career.Roadmap{}, false, nil
	}
	if maxMonths > 0 && totalMonths > maxMonths {
		return career.Roadmap{}, true, &InvalidDurationError{
			TotalMonths: totalMonths,
			NumPhases:   len(path.Phases),
			Reason:      fmt.Sprintf("duration must not exceed %d months", maxMonths),
		}
	}
	roadmap, err = BuildRoadmap(path, totalMonths)
	return roadmap, true, err
}

func clonePath(p career.CareerPath) career.CareerPath {
	p.Phases = slices.Clone(p.Phases)
	return p
}
