package mway

import "fmt"

// DefaultDegree is the per-node element capacity used when a configuration
// leaves Degree unset.
const DefaultDegree = 40

// Config configures a multiway tree.
//
// Less must implement a strict total order over T. Element equality is
// derived from it: a and b are considered equal iff neither Less(a, b) nor
// Less(b, a) holds.
type Config[T any] struct {
	// Degree is the maximum number of elements per node. 0 selects
	// DefaultDegree.
	Degree int
	// Less orders elements.
	Less func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	if cfg.Degree < 1 {
		return fmt.Errorf("%w: degree must be positive, got %d", ErrInvalidConfig, cfg.Degree)
	}
	return nil
}
