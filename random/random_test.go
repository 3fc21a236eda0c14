package random

import (
	"errors"
	"testing"
)

func inUnitInterval(t *testing.T, name string, s Source, draws int) {
	t.Helper()
	for i := 0; i < draws; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("%s: draw %d = %v, want [0, 1)", name, i, v)
		}
	}
}

func TestSources_UnitInterval(t *testing.T) {
	inUnitInterval(t, "insecure", NewInsecure(), 1000)
	inUnitInterval(t, "seeded", NewSeeded(42), 1000)
	inUnitInterval(t, "secure", NewSecure(), 1000)
}

func TestSeeded_Reproducible(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	for i := 0; i < 100; i++ {
		if va, vb := a.Float64(), b.Float64(); va != vb {
			t.Fatalf("draw %d differs: %v vs %v", i, va, vb)
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Seed = %d, want 7", a.Seed())
	}
}

func TestSeeded_DifferentSeeds(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical streams")
	}
}

func TestInsecure_Varies(t *testing.T) {
	s := NewInsecure()
	if s.Float64() == s.Float64() && s.Float64() == s.Float64() {
		t.Error("consecutive insecure draws should differ")
	}
}

func TestSecure_Uniqueness(t *testing.T) {
	s := NewSecure()
	seen := make(map[float64]bool)
	for i := 0; i < 100; i++ {
		v := s.Float64()
		if seen[v] {
			t.Errorf("duplicate secure value: %v", v)
		}
		seen[v] = true
	}
}

func TestSecure_Distribution(t *testing.T) {
	s := NewSecure()
	var buckets [10]int
	for i := 0; i < 2000; i++ {
		buckets[int(s.Float64()*10)]++
	}
	for i, n := range buckets {
		if n == 0 {
			t.Errorf("bucket %d is empty", i)
		}
	}
}

func TestSecure_ReadFailure(t *testing.T) {
	orig := readRandom
	defer func() { readRandom = orig }()
	readRandom = func([]byte) (int, error) {
		return 0, errors.New("entropy unavailable")
	}

	if v := NewSecure().Float64(); v != 0 {
		t.Errorf("Float64() = %v on read failure, want 0", v)
	}
}

func TestFixed(t *testing.T) {
	s := Fixed(0.5)
	for i := 0; i < 3; i++ {
		if v := s.Float64(); v != 0.5 {
			t.Errorf("Float64 = %v, want 0.5", v)
		}
	}
}

func TestFunc(t *testing.T) {
	calls := 0
	s := Func(func() float64 {
		calls++
		return 0.25
	})
	if s.Float64() != 0.25 || calls != 1 {
		t.Errorf("Func did not delegate (calls=%d)", calls)
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(0.1, 0.2, 0.3)
	want := []float64{0.1, 0.2, 0.3, 0.1, 0.2}
	for i, w := range want {
		if v := s.Float64(); v != w {
			t.Errorf("draw %d = %v, want %v", i, v, w)
		}
	}

	if v := NewSequence().Float64(); v != 0 {
		t.Errorf("empty sequence = %v, want 0", v)
	}
}

func BenchmarkSeeded(b *testing.B) {
	s := NewSeeded(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Float64()
	}
}

func BenchmarkInsecure(b *testing.B) {
	s := NewInsecure()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Float64()
	}
}
