package course

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Holes is the number of holes on a course
const Holes = 18

// DefaultPars is the par table of the event course, indexed by hole number minus one
var DefaultPars = [Holes]int{4, 4, 3, 4, 5, 4, 3, 4, 4, 4, 3, 4, 5, 4, 3, 4, 4, 4}

// Errors returned when building a course
var (
	ErrWrongHoleCount = errors.New("course must have exactly 18 holes")
	ErrInvalidPar     = errors.New("par must be a positive integer")
)

// Course is the static course configuration
type Course struct {
	name string
	pars [Holes]int
}

// Config holds the course definition as read from a file
type Config struct {
	// Name of the course
	Name string `yaml:"name"`

	// Pars lists the par of each hole in order
	Pars []int `yaml:"pars"`
}

// Default returns the built-in event course
func Default() *Course {
	return &Course{
		name: "default",
		pars: DefaultPars,
	}
}

// New creates a course from a config
func New(cfg *Config) (*Course, error) {
	if cfg == nil {
		return Default(), nil
	}

	if len(cfg.Pars) != Holes {
		return nil, fmt.Errorf("%w: got %d", ErrWrongHoleCount, len(cfg.Pars))
	}

	c := &Course{name: cfg.Name}
	for i, par := range cfg.Pars {
		if par <= 0 {
			return nil, fmt.Errorf("%w: hole %d has par %d", ErrInvalidPar, i+1, par)
		}
		c.pars[i] = par
	}

	if c.name == "" {
		c.name = "custom"
	}

	return c, nil
}

// Load reads a course from a YAML file. An empty path yields the default course.
func Load(path string) (*Course, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse course file: %w", err)
	}

	return New(&cfg)
}

// Name returns the course name
func (c *Course) Name() string {
	return c.name
}

// Holes returns the number of holes
func (c *Course) Holes() int {
	return Holes
}

// ValidHole reports whether holeNumber is on the course
func (c *Course) ValidHole(holeNumber int) bool {
	return holeNumber >= 1 && holeNumber <= Holes
}

// Par returns the par for a 1-based hole number
func (c *Course) Par(holeNumber int) (int, bool) {
	if !c.ValidHole(holeNumber) {
		return 0, false
	}
	return c.pars[holeNumber-1], true
}

// Pars returns a copy of the par table
func (c *Course) Pars() []int {
	return append([]int{}, c.pars[:]...)
}

// TotalPar returns the par for the full round
func (c *Course) TotalPar() int {
	total := 0
	for _, p := range c.pars {
		total += p
	}
	return total
}
