package generation

import (
	"errors"
	"fmt"
	"math"
)

// sumTolerance is how far a distribution's weights may drift from 1.
const sumTolerance = 1e-9

var (
	// ErrUnknownKey means a neighborhood key has no entry and no fallback.
	// A correctly built table can never produce it.
	ErrUnknownKey = errors.New("no transition entry for neighborhood key")

	// ErrInvalidDistribution means a distribution has negative weights or
	// does not sum to 1.
	ErrInvalidDistribution = errors.New("invalid transition distribution")

	// ErrMissingFallback means a non-terminal terrain has no single-symbol
	// default entry.
	ErrMissingFallback = errors.New("missing fallback transition entry")
)

// TransitionTable maps a neighborhood key to a distribution over the next
// cell's terrain. Keys are either three concatenated symbols (upper-left,
// left, lower-left neighbors) or a single symbol used as the default when
// no three-symbol entry matches.
type TransitionTable map[string]map[Terrain]float64

// TransitionModel answers neighborhood-key lookups against a validated
// transition table. It is immutable once constructed and safe to share.
type TransitionModel struct {
	table TransitionTable
}

// NewTransitionModel validates the table and wraps it in a model. Every
// distribution must have non-negative weights summing to 1, and every
// terrain that can appear as a left neighbor during interior fill
// (Fairway, Rough, Water, Sand, Green) must have a single-symbol entry.
func NewTransitionModel(table TransitionTable) (*TransitionModel, error) {
	for key, dist := range table {
		if len(dist) == 0 {
			return nil, fmt.Errorf("%w: key %q is empty", ErrInvalidDistribution, key)
		}
		sum := 0.0
		for t, p := range dist {
			if p < 0 {
				return nil, fmt.Errorf("%w: key %q has negative weight for %s", ErrInvalidDistribution, key, t)
			}
			sum += p
		}
		if math.Abs(sum-1) > sumTolerance {
			return nil, fmt.Errorf("%w: key %q sums to %v", ErrInvalidDistribution, key, sum)
		}
	}

	for _, t := range []Terrain{Fairway, Rough, Water, Sand, Green} {
		if _, ok := table[string(t)]; !ok {
			return nil, fmt.Errorf("%w: terrain %s", ErrMissingFallback, t)
		}
	}

	return &TransitionModel{table: table}, nil
}

// Distribution returns the distribution for a three-symbol neighborhood
// key, falling back to the left neighbor's single-symbol entry when no
// exact match exists. The returned map is shared; callers must not mutate it.
func (m *TransitionModel) Distribution(key string) (map[Terrain]float64, error) {
	if dist, ok := m.table[key]; ok {
		return dist, nil
	}

	// The left neighbor is the middle symbol of the pattern.
	if len(key) == 3 {
		if dist, ok := m.table[key[1:2]]; ok {
			return dist, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// DefaultTransitions returns the standard transition table. The weights
// were tuned by hand so that no terrain type dominates the fill.
func DefaultTransitions() TransitionTable {
	return TransitionTable{
		// Fairway transitions
		"FFF": {Fairway: 0.85, Water: 0.075, Sand: 0.075},
		"FFR": {Fairway: 0.75, Water: 0.05, Sand: 0.05, Rough: 0.15},
		"RFF": {Fairway: 0.75, Water: 0.05, Sand: 0.05, Rough: 0.15},
		"RFR": {Fairway: 0.6, Water: 0.05, Sand: 0.05, Rough: 0.3},

		// Water transitions
		"WWW": {Water: 0.4, Rough: 0.1, Fairway: 0.5},
		"WWR": {Water: 0.3, Rough: 0.2, Fairway: 0.5},
		"RWW": {Water: 0.3, Rough: 0.2, Fairway: 0.5},
		"RWR": {Water: 0.15, Rough: 0.3, Fairway: 0.55},

		// Sand transitions
		"SSS": {Sand: 0.25, Water: 0.25, Fairway: 0.5},
		"FSS": {Sand: 0.25, Water: 0.1, Fairway: 0.65},
		"SSF": {Sand: 0.25, Water: 0.1, Fairway: 0.65},
		"FSF": {Sand: 0.25, Water: 0.1, Fairway: 0.65},
		"FFS": {Sand: 0.25, Water: 0.1, Fairway: 0.65},
		"SFF": {Sand: 0.25, Water: 0.1, Fairway: 0.65},

		// Rough transitions
		"RRR": {Water: 0.1, Sand: 0.1, Rough: 0.4, Fairway: 0.4},
		"FRR": {Water: 0.1, Sand: 0.1, Rough: 0.4, Fairway: 0.4},
		"RRF": {Water: 0.1, Sand: 0.1, Rough: 0.4, Fairway: 0.4},
		"SRR": {Water: 0.1, Sand: 0.1, Rough: 0.4, Fairway: 0.4},
		"RRS": {Water: 0.1, Sand: 0.1, Rough: 0.4, Fairway: 0.4},
		"WRR": {Water: 0.4, Sand: 0.1, Rough: 0.3, Fairway: 0.2},
		"RRW": {Water: 0.4, Sand: 0.1, Rough: 0.3, Fairway: 0.2},

		// Green transitions
		"GGG": {Green: 0.7, Rough: 0.1, Sand: 0.1, Water: 0.1},
		"GGR": {Green: 0.6, Rough: 0.3, Sand: 0.1},
		"RGG": {Green: 0.6, Rough: 0.3, Sand: 0.1},
		"RGR": {Green: 0.4, Rough: 0.4, Sand: 0.2},
		"RRG": {Green: 0.3, Rough: 0.5, Sand: 0.2},
		"GRR": {Green: 0.3, Rough: 0.5, Sand: 0.2},

		// Defaults, keyed by the left neighbor alone
		"R": {Fairway: 0.7, Water: 0.05, Sand: 0.05, Rough: 0.2},
		"F": {Fairway: 0.8, Water: 0.05, Sand: 0.05, Rough: 0.1},
		"S": {Fairway: 0.4, Water: 0.05, Sand: 0.5, Rough: 0.05},
		"W": {Fairway: 0.4, Water: 0.5, Sand: 0.05, Rough: 0.05},
		"G": {Green: 0.3, Rough: 0.5, Sand: 0.2},
	}
}

// DefaultDirectionWeights returns the uniform next-hole direction table.
func DefaultDirectionWeights() map[Direction]float64 {
	return map[Direction]float64{
		DirectionLeft:  0.25,
		DirectionUp:    0.25,
		DirectionRight: 0.25,
		DirectionDown:  0.25,
	}
}
