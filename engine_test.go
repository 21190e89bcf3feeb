package bigsqrt

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func between(t *testing.T, got decimal.Decimal, lo, hi string) {
	t.Helper()
	if got.LessThan(decimal.RequireFromString(lo)) || got.GreaterThan(decimal.RequireFromString(hi)) {
		t.Fatalf("got %s, want a value in [%s, %s]", got, lo, hi)
	}
}

func TestSqrtOfTwo(t *testing.T) {
	root, err := Sqrt(decimal.NewFromInt(2))
	if err != nil {
		t.Fatal(err)
	}
	between(t, root, "1.413", "1.415")
	if root.String() != "1.4142135624" {
		t.Errorf("sqrt(2) = %s, want 1.4142135624 at the default scale", root)
	}
}

func TestSqrtOfHundred(t *testing.T) {
	root, err := Sqrt(decimal.NewFromInt(100))
	if err != nil {
		t.Fatal(err)
	}
	between(t, root, "9.999", "10.001")
	if !root.Equal(decimal.NewFromInt(10)) {
		t.Errorf("sqrt(100) = %s, want 10", root)
	}
}

func TestSqrtOfZero(t *testing.T) {
	root, err := Sqrt(decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	between(t, root, "-0.001", "0.001")
}

func TestSqrtNegative(t *testing.T) {
	if _, err := Sqrt(decimal.NewFromInt(-4)); !errors.Is(err, ErrNegativeInput) {
		t.Fatalf("err = %v, want ErrNegativeInput", err)
	}
	if _, err := Sqrt(decimal.NewFromInt(-4)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative input must be in the ErrInvalidArgument class")
	}
}

func TestSqrtBigInt(t *testing.T) {
	root, err := SqrtBigInt(big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	between(t, root, "1.413", "1.415")

	if _, err := SqrtBigInt(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("nil input: err = %v, want ErrNilInput", err)
	}
	if _, err := SqrtBigInt(big.NewInt(-1)); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("negative input: err = %v, want ErrNegativeInput", err)
	}
}

func TestSqrtSquaresBack(t *testing.T) {
	tolerance := decimal.RequireFromString("0.001")
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		n := decimal.NewFromInt(r.Int63n(100000))
		root, err := Sqrt(n)
		if err != nil {
			t.Fatal(err)
		}
		residual := root.Mul(root).Sub(n).Abs()
		if residual.GreaterThan(tolerance) {
			t.Fatalf("sqrt(%s) = %s, square differs from input by %s", n, root, residual)
		}
	}
}

func TestSqrtCustomScale(t *testing.T) {
	ctx, err := NewContext(WithInitialScale(4))
	if err != nil {
		t.Fatal(err)
	}
	root, err := NewEngine(ctx).Sqrt(decimal.NewFromInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if root.String() != "1.4142" {
		t.Fatalf("sqrt(2) at scale 4 = %s, want 1.4142", root)
	}
}

func TestSqrtIterationCapIsNotAnError(t *testing.T) {
	// one refinement step is nowhere near convergence for 1e-10
	ctx, err := NewContext(WithMaxIterations(1))
	if err != nil {
		t.Fatal(err)
	}
	root, err := NewEngine(ctx).Sqrt(decimal.NewFromInt(2))
	if err != nil {
		t.Fatalf("hitting the iteration cap must not fail: %v", err)
	}
	// seed 2 -> 1.5 -> 1.41666...; coarse but present
	between(t, root, "1.41", "1.42")
}

func TestStricterAbortCriterionIsAtLeastAsClose(t *testing.T) {
	input := decimal.NewFromInt(2)

	residual := func(criterion decimal.Decimal) decimal.Decimal {
		ctx, err := NewContext(WithAbortCriterion(criterion), WithInitialScale(30))
		if err != nil {
			t.Fatal(err)
		}
		root, err := NewEngine(ctx).Sqrt(input)
		if err != nil {
			t.Fatal(err)
		}
		return root.Mul(root).Sub(input).Abs()
	}

	loose := residual(decimal.New(1, -2))
	strict := residual(decimal.New(1, -10))
	if strict.GreaterThan(loose) {
		t.Fatalf("stricter criterion gave residual %s, looser gave %s", strict, loose)
	}
}

func TestIsPerfectSquare(t *testing.T) {
	for _, k := range []int64{0, 1, 2, 3, 9, 12, 100, 111} {
		square := new(big.Int).Mul(big.NewInt(k), big.NewInt(k))
		ok, err := IsPerfectSquare(square)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("IsPerfectSquare(%s) = false, want true", square)
		}
	}
	for _, n := range []int64{2, 3, 5, 80, 99, 12346} {
		ok, err := IsPerfectSquare(big.NewInt(n))
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("IsPerfectSquare(%d) = true, want false", n)
		}
	}

	if _, err := IsPerfectSquare(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("nil input: err = %v, want ErrNilInput", err)
	}
	if _, err := IsPerfectSquare(big.NewInt(-9)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative input: err = %v, want ErrInvalidArgument", err)
	}
}

func TestSqrtOfPerfectSquare(t *testing.T) {
	root, err := SqrtOfPerfectSquare(big.NewInt(81))
	if err != nil {
		t.Fatal(err)
	}
	if root.Cmp(big.NewInt(9)) != 0 {
		t.Fatalf("SqrtOfPerfectSquare(81) = %s, want 9", root)
	}

	root, err = SqrtOfPerfectSquare(big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if root.Sign() != 0 {
		t.Fatalf("SqrtOfPerfectSquare(0) = %s, want 0", root)
	}

	if _, err := SqrtOfPerfectSquare(big.NewInt(80)); !errors.Is(err, ErrNotPerfectSquare) {
		t.Fatalf("80: err = %v, want ErrNotPerfectSquare", err)
	}
	if _, err := SqrtOfPerfectSquare(big.NewInt(80)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatal("ErrNotPerfectSquare must be in the ErrInvalidArgument class")
	}
	if _, err := SqrtOfPerfectSquare(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("nil input: err = %v, want ErrNilInput", err)
	}
	if _, err := SqrtOfPerfectSquare(big.NewInt(-81)); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("negative input: err = %v, want ErrNegativeInput", err)
	}
}

func TestSqrtOfPerfectSquareRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		k := big.NewInt(r.Int63n(300))
		square := new(big.Int).Mul(k, k)
		root, err := SqrtOfPerfectSquare(square)
		if err != nil {
			t.Fatal(err)
		}
		if root.Cmp(k) != 0 {
			t.Fatalf("SqrtOfPerfectSquare(%s) = %s, want %s", square, root, k)
		}
	}
}

type recordingObserver struct {
	events []IterationEvent
}

func (o *recordingObserver) ObserveIteration(event IterationEvent) {
	o.events = append(o.events, event)
}

func TestEngineEmitsIterationEvents(t *testing.T) {
	rec := &recordingObserver{}
	engine := NewEngine(nil, WithObserver(rec))
	if _, err := engine.Sqrt(decimal.NewFromInt(2)); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) < 2 {
		t.Fatalf("expected several iteration events, got %d", len(rec.events))
	}
	for i, event := range rec.events {
		if event.Iteration != i+1 {
			t.Errorf("event %d has iteration %d", i, event.Iteration)
		}
		if !event.Delta.Equal(event.Successor.Sub(event.Predecessor).Abs()) {
			t.Errorf("event %d delta %s does not match |successor-predecessor|", i, event.Delta)
		}
	}
	last := rec.events[len(rec.events)-1]
	if !last.Delta.LessThan(DefaultAbortCriterion) {
		t.Errorf("final delta %s has not converged below the default criterion", last.Delta)
	}
}

func TestEngineSharedAcrossGoroutines(t *testing.T) {
	engine := NewEngine(nil)
	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func(seed int64) {
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < 20; i++ {
				if _, err := engine.Sqrt(decimal.NewFromInt(r.Int63n(10000))); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}(int64(g))
	}
	for g := 0; g < 8; g++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
