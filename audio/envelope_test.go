package audio

import (
	"math"
	"testing"
)

// TestEnvExpEndpoints verifies unity at start and zero at the end
func TestEnvExpEndpoints(t *testing.T) {
	for _, power := range []float64{1, 2, 3.2, 5} {
		if got := EnvExp(0, 100, power); got != 1 {
			t.Errorf("EnvExp(0, 100, %v): expected 1, got %f", power, got)
		}
		if got := EnvExp(100, 100, power); got != 0 {
			t.Errorf("EnvExp(100, 100, %v): expected 0, got %f", power, got)
		}
		if got := EnvExp(99, 100, power); got > 0.02 {
			t.Errorf("EnvExp(99, 100, %v): expected near 0, got %f", power, got)
		}
	}
}

// TestEnvExpMonotonic verifies the curve never rises
func TestEnvExpMonotonic(t *testing.T) {
	const n = 2000
	for _, power := range []float64{0.5, 2, 3.2} {
		prev := EnvExp(0, n, power)
		for i := 1; i <= n+10; i++ {
			cur := EnvExp(i, n, power)
			if cur > prev {
				t.Fatalf("EnvExp rose at i=%d (power %v): %f > %f", i, power, cur, prev)
			}
			if cur < 0 {
				t.Fatalf("EnvExp negative at i=%d: %f", i, cur)
			}
			prev = cur
		}
	}
}

// TestClampHelpers verifies saturation of both clamps
func TestClampHelpers(t *testing.T) {
	tests := []struct {
		in, want01, want11 float64
	}{
		{-2, 0, -1},
		{-0.5, 0, -0.5},
		{0, 0, 0},
		{0.3, 0.3, 0.3},
		{1, 1, 1},
		{7, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want01 {
			t.Errorf("Clamp01(%v): expected %v, got %v", tt.in, tt.want01, got)
		}
		if got := Clamp(tt.in); got != tt.want11 {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.in, tt.want11, got)
		}
	}
}

// TestSoftClip verifies tanh shape and bounds
func TestSoftClip(t *testing.T) {
	if SoftClip(0) != 0 {
		t.Errorf("Expected SoftClip(0) = 0, got %f", SoftClip(0))
	}
	if got, want := SoftClip(0.5), math.Tanh(0.8); math.Abs(got-want) > 1e-15 {
		t.Errorf("Expected SoftClip(0.5) = %f, got %f", want, got)
	}
	for _, x := range []float64{-100, -3, 3, 100} {
		if v := SoftClip(x); v < -1 || v > 1 {
			t.Errorf("SoftClip(%v) out of range: %f", x, v)
		}
	}
	if SoftClip(-0.4) != -SoftClip(0.4) {
		t.Error("Expected SoftClip to be odd-symmetric")
	}
}

// TestAttackDecay verifies the rise/fall breakpoints
func TestAttackDecay(t *testing.T) {
	const attack = 0.08
	if got := attackDecay(0, attack); got != 0 {
		t.Errorf("Expected 0 at start, got %f", got)
	}
	if got := attackDecay(0.04, attack); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected 0.5 halfway through attack, got %f", got)
	}
	if got := attackDecay(attack, attack); got != 1 {
		t.Errorf("Expected peak at attack end, got %f", got)
	}
	if got := attackDecay(1, attack); got != 0 {
		t.Errorf("Expected 0 at end, got %f", got)
	}
	if got := attackDecay(1.5, attack); got != 0 {
		t.Errorf("Expected 0 past end, got %f", got)
	}
}

// TestToneEnvelopeSegments verifies the three tone segments
func TestToneEnvelopeSegments(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.04, 0.5},
		{0.08, 1},
		{0.20, 1 - 0.12*1.2},
		{0.25, 0.7},
		{0.625, 0.35},
		{1, 0},
	}
	for _, tt := range tests {
		if got := toneEnvelope(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("toneEnvelope(%v): expected %f, got %f", tt.p, tt.want, got)
		}
	}

	for p := 0.0; p < 1; p += 0.001 {
		if e := toneEnvelope(p); e < 0 || e > 1 {
			t.Fatalf("toneEnvelope(%v) out of [0,1]: %f", p, e)
		}
	}
}
