package tower

const (
	minDoors = 3
	maxDoors = 6

	// memoryFloor is the first floor where the safe door can repeat history.
	memoryFloor = 5
)

// Rng is the randomness the engine draws from. *math/rand.Rand satisfies it.
type Rng interface {
	Float64() float64
	Intn(n int) int
}

// DoorCount returns how many doors floor shows: one more every two floors,
// from 3 up to 6.
func DoorCount(floor int) int {
	n := minDoors + floor/2
	if n < minDoors {
		return minDoors
	}
	if n > maxDoors {
		return maxDoors
	}
	return n
}

// SelectSafeDoor picks the safe door for the state's current floor and
// appends it to the history. From floor 5 on, once two floors have been
// rendered, the safe door repeats the one from two floors back and memory
// is true so the UI can show a hint.
func SelectSafeDoor(s State, rng Rng) (next State, safe int, memory bool) {
	next = s.Clone()
	doors := DoorCount(s.Floor)

	if n := len(s.LastSafeDoors); s.Floor >= memoryFloor && n >= 2 {
		recalled := s.LastSafeDoors[n-2]
		if recalled >= 1 && recalled <= doors {
			safe, memory = recalled, true
		}
	}
	if !memory {
		safe = rng.Intn(doors) + 1
	}

	next.LastSafeDoors = append(next.LastSafeDoors, safe)
	return next, safe, memory
}
