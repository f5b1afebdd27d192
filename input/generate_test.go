package input

import "testing"

func TestUniformDefaultRange(t *testing.T) {
	out, err := NewGenerator(WithSeed(42)).Uniform(10000)
	if err != nil {
		t.Fatalf("Uniform error: %v", err)
	}
	if len(out) != 10000 {
		t.Fatalf("len = %d, want 10000", len(out))
	}
	var sawLow, sawHigh bool
	for i, v := range out {
		if v < 0 || v >= 100 {
			t.Fatalf("out[%d] = %d, want [0,100)", i, v)
		}
		sawLow = sawLow || v == 0
		sawHigh = sawHigh || v == 99
	}
	if !sawLow || !sawHigh {
		t.Fatal("range endpoints never drawn")
	}
}

func TestUniformDeterministic(t *testing.T) {
	a, _ := NewGenerator(WithSeed(7)).Uniform(256)
	b, _ := NewGenerator(WithSeed(7)).Uniform(256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed 7 not deterministic at %d", i)
		}
	}
}

func TestUniformDifferentSeeds(t *testing.T) {
	a, _ := NewGenerator(WithSeed(1)).Uniform(64)
	b, _ := NewGenerator(WithSeed(2)).Uniform(64)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical input")
	}
}

func TestUniformRejectsNonPositive(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Uniform(0); err == nil {
		t.Fatal("expected error for n=0")
	}
	if _, err := g.Uniform(-3); err == nil {
		t.Fatal("expected error for n<0")
	}
}

func TestWithRange(t *testing.T) {
	out, err := NewGenerator(WithRange(-5, 5)).Uniform(1000)
	if err != nil {
		t.Fatalf("Uniform error: %v", err)
	}
	for i, v := range out {
		if v < -5 || v >= 5 {
			t.Fatalf("out[%d] = %d, want [-5,5)", i, v)
		}
	}
}

func TestWithRangeInvalid(t *testing.T) {
	if _, err := NewGenerator(WithRange(3, 3)).Uniform(4); err == nil {
		t.Fatal("expected error for empty range")
	}
}

func TestFillMatchesUniform(t *testing.T) {
	g := NewGenerator(WithSeed(99))
	want, _ := g.Uniform(50)
	got := make([]int32, 50)
	if err := g.Fill(got); err != nil {
		t.Fatalf("Fill error: %v", err)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Fill[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if g.Seed() != 99 {
		t.Fatalf("Seed = %d, want 99", g.Seed())
	}
}
