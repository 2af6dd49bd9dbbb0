package animation

import (
	"math"
	"testing"
)

func TestSpringDescriptionValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive mass")
		}
	}()
	NewSpringDescription(0, 100, 1)
}

func TestSpringDescriptionRejectsNegativeDamping(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative damping")
		}
	}()
	NewSpringDescription(1, 100, -1)
}

func TestSpringSimulationSettlesAtEnd(t *testing.T) {
	desc := NewSpringDescription(1, 100, 20)
	sim := NewSpringSimulation(desc, 0, 1, 0)
	if !sim.IsDone(10) {
		t.Fatal("expected spring to have settled by t=10s")
	}
	if math.Abs(sim.X(10)-1) > 1e-2 {
		t.Fatalf("expected position near end at t=10s, got %v", sim.X(10))
	}
}

func TestFrictionSimulationRejectsInvalidDrag(t *testing.T) {
	if _, err := NewFrictionSimulation(1, 0, 1); err == nil {
		t.Fatal("expected error for drag == 1")
	}
	if _, err := NewFrictionSimulation(-1, 0, 1); err == nil {
		t.Fatal("expected error for negative drag")
	}
}

func TestFrictionSimulationDecelerates(t *testing.T) {
	sim, err := NewFrictionSimulation(0.135, 0, 10)
	if err != nil {
		t.Fatalf("NewFrictionSimulation: %v", err)
	}
	if sim.DX(1) >= sim.DX(0) {
		t.Fatalf("expected velocity to decay over time: DX(0)=%v DX(1)=%v", sim.DX(0), sim.DX(1))
	}
}

func TestTweenSequenceItemRejectsNonPositiveWeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero weight")
		}
	}()
	NewTweenSequenceItem[float64](TweenFloat64(0, 1), 0)
}

func TestTweenSequenceSplitsProportionally(t *testing.T) {
	seq := NewTweenSequence([]TweenSequenceItem[float64]{
		NewTweenSequenceItem[float64](TweenFloat64(0, 10), 1),
		NewTweenSequenceItem[float64](TweenFloat64(10, 20), 1),
	})
	if got := seq.Transform(0); got != 0 {
		t.Fatalf("Transform(0) = %v, want 0", got)
	}
	if got := seq.Transform(0.25); got != 5 {
		t.Fatalf("Transform(0.25) = %v, want 5 (midway through first half)", got)
	}
	if got := seq.Transform(1); got != 20 {
		t.Fatalf("Transform(1) = %v, want 20", got)
	}
}

func TestIntervalValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for begin > end")
		}
	}()
	NewInterval(0.8, 0.2, nil)
}

func TestIntervalClampsOutsideRange(t *testing.T) {
	iv := NewInterval(0.2, 0.8, nil)
	if iv.Transform(0) != 0 {
		t.Fatalf("Transform(0) = %v, want 0", iv.Transform(0))
	}
	if iv.Transform(1) != 1 {
		t.Fatalf("Transform(1) = %v, want 1", iv.Transform(1))
	}
	if got := iv.Transform(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Transform(0.5) = %v, want 0.5 (linear midpoint of [0.2,0.8])", got)
	}
}
