// Package catalog holds the static exercise and program content. The data
// is reference material shipped with the binary, parsed once at startup.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"tempo/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the parsed content: exercise reference data plus programs
// with their workouts
type Catalog struct {
	Exercises []domain.Exercise `yaml:"exercises"`
	Programs  []domain.Program  `yaml:"programs"`

	exerciseByID map[string]domain.Exercise
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses the embedded catalog. Subsequent calls return the same
// instance. A parse failure is a packaging defect, not a runtime
// condition to recover from.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(catalogYAML)
	})
	return loaded, loadErr
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.exerciseByID = make(map[string]domain.Exercise, len(c.Exercises))
	for _, ex := range c.Exercises {
		if ex.ID == "" {
			return nil, fmt.Errorf("catalog exercise %q has no id", ex.Name)
		}
		if _, dup := c.exerciseByID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		c.exerciseByID[ex.ID] = ex
	}

	// Every workout step must reference a known exercise
	for _, p := range c.Programs {
		for _, w := range p.Workouts {
			for _, s := range w.Steps {
				if _, ok := c.exerciseByID[s.ExerciseID]; !ok {
					return nil, fmt.Errorf("workout %q references unknown exercise %q", w.Name, s.ExerciseID)
				}
			}
		}
	}

	return &c, nil
}

// Exercise looks up an exercise by identifier
func (c *Catalog) Exercise(id string) (domain.Exercise, bool) {
	ex, ok := c.exerciseByID[id]
	return ex, ok
}

// Program looks up a program by identifier
func (c *Catalog) Program(id string) (domain.Program, bool) {
	for _, p := range c.Programs {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Program{}, false
}
