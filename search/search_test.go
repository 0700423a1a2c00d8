package search_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/advent/search"
)

// ring is a cycle over bytes: 0–1–2–…–255–0.
func ring(x byte) []byte {
	switch x {
	case 0:
		return []byte{1, 255}
	case 255:
		return []byte{254, 0}
	default:
		return []byte{x - 1, x + 1}
	}
}

// hexCycle is the 6-cycle 0–1–2–3–4–5–0; other vertices are isolated.
func hexCycle(x byte) []byte {
	switch x {
	case 0:
		return []byte{1, 5}
	case 1:
		return []byte{0, 2}
	case 2:
		return []byte{1, 3}
	case 3:
		return []byte{2, 4}
	case 4:
		return []byte{3, 5}
	case 5:
		return []byte{4, 0}
	default:
		return nil
	}
}

func isPrime(x byte) bool {
	if x < 2 {
		return false
	}
	for d := byte(2); d < x; d++ {
		if x%d == 0 {
			return false
		}
	}

	return true
}

// TestNilArguments verifies every helper rejects missing functions.
func TestNilArguments(t *testing.T) {
	if _, err := search.CountReachable[int](0, nil, func(int) []int { return nil }); !errors.Is(err, search.ErrNilPredicate) {
		t.Errorf("CountReachable nil predicate: want ErrNilPredicate, got %v", err)
	}
	if _, err := search.CountReachable[int](0, func(int) bool { return false }, nil); !errors.Is(err, search.ErrNilNeighbors) {
		t.Errorf("CountReachable nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	if _, err := search.PathExists(0, 1, nil); !errors.Is(err, search.ErrNilNeighbors) {
		t.Errorf("PathExists nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	if _, err := search.ShortestPath(0, 1, nil); !errors.Is(err, search.ErrNilNeighbors) {
		t.Errorf("ShortestPath nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	if _, err := search.CountPaths[int](0, nil, func(int) []int { return nil }); !errors.Is(err, search.ErrNilPredicate) {
		t.Errorf("CountPaths nil predicate: want ErrNilPredicate, got %v", err)
	}
}

// TestCountReachable walks the byte ring: every vertex reaches every other,
// so from any source the count equals the number of primes below 256.
func TestCountReachable(t *testing.T) {
	numPrimes := 0
	for x := 0; x < 256; x++ {
		if isPrime(byte(x)) {
			numPrimes++
		}
	}

	for x := 0; x < 256; x++ {
		got, err := search.CountReachable(byte(x), isPrime, ring)
		if err != nil {
			t.Fatalf("CountReachable(%d): %v", x, err)
		}
		if got != numPrimes {
			t.Errorf("CountReachable(%d) = %d; want %d", x, got, numPrimes)
		}
	}
}

// TestCountReachable_SourceCounts verifies the source itself is counted when
// it is a target, and disconnected targets are not.
func TestCountReachable_SourceCounts(t *testing.T) {
	got, err := search.CountReachable(byte(7), isPrime, func(byte) []byte { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("isolated prime source: count = %d; want 1", got)
	}
}

// TestPathExists covers reachability around a cycle, including src == dst.
func TestPathExists(t *testing.T) {
	for _, dst := range []byte{5, 4, 2, 0} {
		ok, err := search.PathExists(0, dst, hexCycle)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("PathExists(0, %d) = false; want true", dst)
		}
	}

	ok, err := search.PathExists(0, 9, hexCycle)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("PathExists(0, 9) = true; want false (vertex 9 is isolated)")
	}
}

// TestShortestPath checks exact paths on the 6-cycle, where the closer arc
// must win.
func TestShortestPath(t *testing.T) {
	cases := []struct {
		dst  byte
		want []byte
	}{
		{5, []byte{0, 5}},
		{4, []byte{0, 5, 4}},
		{2, []byte{0, 1, 2}},
		{0, []byte{0}},
	}
	for _, tc := range cases {
		got, err := search.ShortestPath(0, tc.dst, hexCycle)
		if err != nil {
			t.Fatalf("ShortestPath(0, %d): %v", tc.dst, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ShortestPath(0, %d) = %v; want %v", tc.dst, got, tc.want)
		}
	}
}

// TestShortestPath_NoPath verifies the explicit failure on unreachable dst.
func TestShortestPath_NoPath(t *testing.T) {
	_, err := search.ShortestPath(0, 1, func(byte) []byte { return nil })
	if !errors.Is(err, search.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

// TestWithMaxDepth bounds the walk around the 6-cycle from vertex 0:
// depth 1 reaches {1, 5}, depth 2 adds {2, 4}, depth 3 adds {3}.
func TestWithMaxDepth(t *testing.T) {
	all := func(byte) bool { return true }

	got, err := search.CountReachable(0, all, hexCycle, search.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("CountReachable depth 2 = %d; want 5", got)
	}

	got, err = search.CountReachable(0, all, hexCycle, search.WithMaxDepth(0))
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("CountReachable depth 0 (no limit) = %d; want 6", got)
	}

	ok, err := search.PathExists(0, 3, hexCycle, search.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("PathExists(0, 3) within depth 2 = true; want false")
	}
	ok, err = search.PathExists(0, 3, hexCycle, search.WithMaxDepth(3))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("PathExists(0, 3) within depth 3 = false; want true")
	}

	path, err := search.ShortestPath(0, 4, hexCycle, search.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0, 5, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("ShortestPath(0, 4) depth 2 = %v; want %v", path, want)
	}
	if _, err := search.ShortestPath(0, 3, hexCycle, search.WithMaxDepth(2)); !errors.Is(err, search.ErrNoPath) {
		t.Errorf("ShortestPath(0, 3) depth 2: want ErrNoPath, got %v", err)
	}
}

// TestWithMaxDepth_Negative verifies a negative limit is rejected by every
// helper before any traversal starts.
func TestWithMaxDepth_Negative(t *testing.T) {
	all := func(byte) bool { return true }

	if _, err := search.CountReachable(0, all, hexCycle, search.WithMaxDepth(-1)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("CountReachable: want ErrOptionViolation, got %v", err)
	}
	if _, err := search.PathExists(0, 3, hexCycle, search.WithMaxDepth(-1)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("PathExists: want ErrOptionViolation, got %v", err)
	}
	if _, err := search.ShortestPath(0, 3, hexCycle, search.WithMaxDepth(-1)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("ShortestPath: want ErrOptionViolation, got %v", err)
	}
}

// TestDefaultOptions pins the "no limit" default.
func TestDefaultOptions(t *testing.T) {
	if d := search.DefaultOptions().MaxDepth; d != 0 {
		t.Errorf("DefaultOptions().MaxDepth = %d; want 0", d)
	}
}

// TestCountPaths counts distinct routes through a small layered DAG:
//
//	0 1 3
//	2   5
//	4 6 7 8
//	    9
func TestCountPaths(t *testing.T) {
	edges := func(x byte) []byte {
		switch x {
		case 0:
			return []byte{1, 2}
		case 1:
			return []byte{3}
		case 2:
			return []byte{4}
		case 3:
			return []byte{5}
		case 4:
			return []byte{6}
		case 5, 6:
			return []byte{7}
		case 7:
			return []byte{8, 9}
		default:
			return nil
		}
	}
	isTarget := func(x byte) bool { return x >= 8 }

	got, err := search.CountPaths(0, isTarget, edges)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("CountPaths = %d; want 4", got)
	}
}
