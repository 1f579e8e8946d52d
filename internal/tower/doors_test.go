package tower

import (
	"math/rand"
	"testing"
)

func TestDoorCount(t *testing.T) {
	cases := []struct {
		floor int
		want  int
	}{
		{1, 3}, {2, 4}, {3, 4}, {4, 5}, {5, 5}, {6, 6}, {7, 6}, {50, 6},
	}
	for _, tc := range cases {
		if got := DoorCount(tc.floor); got != tc.want {
			t.Errorf("DoorCount(%d) = %d, want %d", tc.floor, got, tc.want)
		}
	}
}

func TestDoorCountMonotonicAndBounded(t *testing.T) {
	prev := DoorCount(1)
	for f := 1; f <= 200; f++ {
		n := DoorCount(f)
		if n < 3 || n > 6 {
			t.Fatalf("DoorCount(%d) = %d outside [3,6]", f, n)
		}
		if n < prev {
			t.Fatalf("DoorCount(%d) = %d decreased from %d", f, n, prev)
		}
		if want := min(3+f/2, 6); n != want {
			t.Fatalf("DoorCount(%d) = %d, want %d", f, n, want)
		}
		prev = n
	}
}

func TestSelectSafeDoorMemoryDoor(t *testing.T) {
	s := NewState()
	s.Floor = 7
	s.LastSafeDoors = []int{2, 4, 1, 3, 5, 1}
	rng := &scriptRng{t: t}

	next, safe, memory := SelectSafeDoor(s, rng)
	if !memory {
		t.Fatal("expected memory door on floor 7 with history")
	}
	if safe != 5 {
		t.Errorf("safe = %d, want 5 (two floors back)", safe)
	}
	if got := next.LastSafeDoors[len(next.LastSafeDoors)-1]; got != 5 {
		t.Errorf("history tail = %d, want 5", got)
	}
	if len(s.LastSafeDoors) != 6 {
		t.Error("SelectSafeDoor modified the input history")
	}
}

func TestSelectSafeDoorRandomBeforeFloorFive(t *testing.T) {
	s := NewState()
	s.Floor = 4
	s.LastSafeDoors = []int{1, 2, 3}
	rng := &scriptRng{t: t, ints: []int{4}}

	next, safe, memory := SelectSafeDoor(s, rng)
	if memory {
		t.Fatal("memory door must not appear before floor 5")
	}
	if safe != 5 {
		t.Errorf("safe = %d, want 5", safe)
	}
	if len(next.LastSafeDoors) != 4 {
		t.Errorf("history length = %d, want 4", len(next.LastSafeDoors))
	}
}

func TestSelectSafeDoorNeedsTwoEntries(t *testing.T) {
	s := NewState()
	s.Floor = 9
	s.LastSafeDoors = []int{2}
	rng := &scriptRng{t: t, ints: []int{0}}

	_, safe, memory := SelectSafeDoor(s, rng)
	if memory || safe != 1 {
		t.Errorf("got safe=%d memory=%v, want random door 1", safe, memory)
	}
}

func TestSelectSafeDoorInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for f := 1; f <= 4; f++ {
		s := NewState()
		s.Floor = f
		for i := 0; i < 100; i++ {
			_, safe, _ := SelectSafeDoor(s, rng)
			if safe < 1 || safe > DoorCount(f) {
				t.Fatalf("floor %d: safe door %d out of range", f, safe)
			}
		}
	}
}
