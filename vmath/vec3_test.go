package vmath

import (
	"math"
	"testing"
)

func TestV3Toward(t *testing.T) {
	v := V3Toward(Vec3{}, Vec3{X: 3, Y: 4}, 10)
	if math.Abs(V3Mag(v)-10) > 1e-9 {
		t.Fatalf("magnitude = %v, want 10", V3Mag(v))
	}
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Fatalf("direction = %+v, want (6, 8, 0)", v)
	}

	// Degenerate: zero distance yields zero velocity
	if got := V3Toward(Vec3{X: 1}, Vec3{X: 1}, 5); got != (Vec3{}) {
		t.Fatalf("toward self = %+v, want zero", got)
	}
}

func TestV3LerpClamps(t *testing.T) {
	a := Vec3{Y: -48}
	b := Vec3{Y: -36}

	mid := V3Lerp(a, b, 0.5)
	if mid.Y != -42 {
		t.Fatalf("midpoint y = %v, want -42", mid.Y)
	}
	if got := V3Lerp(a, b, 1.5); got != b {
		t.Fatalf("t>1 = %+v, want endpoint", got)
	}
	if got := V3Lerp(a, b, -1); got != a {
		t.Fatalf("t<0 = %+v, want start", got)
	}
}

func TestFastRandDeterministicAndBounded(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)

	for i := 0; i < 1000; i++ {
		av, bv := a.Float64(), b.Float64()
		if av != bv {
			t.Fatalf("sequence diverged at %d: %v vs %v", i, av, bv)
		}
		if av < 0 || av >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", av)
		}
	}

	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(-30, 30); v < -30 || v >= 30 {
			t.Fatalf("Range(-30, 30) = %v", v)
		}
		if n := r.Intn(3); n < 0 || n > 2 {
			t.Fatalf("Intn(3) = %d", n)
		}
	}
}
