package tower

import "testing"

// scriptRng replays fixed draws so every branch can be forced.
type scriptRng struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (r *scriptRng) Float64() float64 {
	r.t.Helper()
	if len(r.floats) == 0 {
		r.t.Fatal("scriptRng: out of Float64 draws")
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

// Intn returns the next scripted value, which must already be in [0, n).
func (r *scriptRng) Intn(n int) int {
	r.t.Helper()
	if len(r.ints) == 0 {
		r.t.Fatal("scriptRng: out of Intn draws")
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scriptRng: scripted %d not in [0,%d)", v, n)
	}
	return v
}

func (r *scriptRng) drained() bool { return len(r.floats) == 0 && len(r.ints) == 0 }
