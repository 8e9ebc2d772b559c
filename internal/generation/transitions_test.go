package generation

import (
	"errors"
	"math"
	"testing"
)

func TestNewTransitionModel_DefaultTableIsValid(t *testing.T) {
	model, err := NewTransitionModel(DefaultTransitions())
	if err != nil {
		t.Fatalf("default table rejected: %v", err)
	}
	if model == nil {
		t.Fatal("expected model")
	}
}

func TestDefaultTransitions_DistributionsSumToOne(t *testing.T) {
	for key, dist := range DefaultTransitions() {
		sum := 0.0
		for _, p := range dist {
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("key %q sums to %v", key, sum)
		}
	}
}

func TestNewTransitionModel_RejectsBadSum(t *testing.T) {
	table := DefaultTransitions()
	table["FFF"] = map[Terrain]float64{Fairway: 0.5, Rough: 0.4}

	_, err := NewTransitionModel(table)
	if !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}
}

func TestNewTransitionModel_RejectsNegativeWeight(t *testing.T) {
	table := DefaultTransitions()
	table["FFF"] = map[Terrain]float64{Fairway: 1.5, Rough: -0.5}

	_, err := NewTransitionModel(table)
	if !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}
}

func TestNewTransitionModel_RejectsMissingFallback(t *testing.T) {
	table := DefaultTransitions()
	delete(table, "S")

	_, err := NewTransitionModel(table)
	if !errors.Is(err, ErrMissingFallback) {
		t.Fatalf("expected ErrMissingFallback, got %v", err)
	}
}

func TestDistribution_ExactPattern(t *testing.T) {
	model, err := NewTransitionModel(DefaultTransitions())
	if err != nil {
		t.Fatal(err)
	}

	dist, err := model.Distribution("FFF")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if dist[Fairway] != 0.85 {
		t.Errorf("FFF fairway weight = %v, want 0.85", dist[Fairway])
	}
}

func TestDistribution_FallsBackToLeftNeighbor(t *testing.T) {
	model, err := NewTransitionModel(DefaultTransitions())
	if err != nil {
		t.Fatal(err)
	}

	// FWF has no pattern entry; the left neighbor (middle symbol) is Water.
	dist, err := model.Distribution("FWF")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	want, err := model.Distribution("W")
	if err != nil {
		t.Fatal(err)
	}
	if dist[Water] != want[Water] || dist[Fairway] != want[Fairway] {
		t.Errorf("fallback did not use left-neighbor entry: got %v, want %v", dist, want)
	}
}

func TestDistribution_UnknownKey(t *testing.T) {
	model, err := NewTransitionModel(TransitionTable{
		"F": {Fairway: 1},
		"R": {Rough: 1},
		"W": {Water: 1},
		"S": {Sand: 1},
		"G": {Green: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	// TeeBox has no fallback entry and never needs one during fill.
	_, err = model.Distribution("AAA")
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}
