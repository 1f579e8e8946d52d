package tower

// StartingLives is the life count of a fresh climb.
const StartingLives = 3

// Achievements records the run's unlock progress.
type Achievements struct {
	Floor10         bool `json:"floor10"`
	SixDoorsInRow   int  `json:"sixDoorsInRow"` // 0 until unlocked, then 6
	TrapsDodged     int  `json:"trapsDodged"`
	NoDamageVictory bool `json:"noDamageVictory"`
}

// State is the full game state of one climb.
type State struct {
	Floor                int
	Lives                int
	Inventory            []Relic
	Achievements         Achievements
	LastSafeDoors        []int // safe door of every rendered floor, oldest first
	ConsecutiveSafeDoors int
	NoDamageThisRun      bool
}

// NewState returns the state of a fresh climb on floor 1.
func NewState() State {
	return State{
		Floor:           1,
		Lives:           StartingLives,
		Inventory:       []Relic{},
		LastSafeDoors:   []int{},
		NoDamageThisRun: true,
	}
}

// Clone returns a deep copy so transitions never alias the caller's slices.
func (s State) Clone() State {
	c := s
	c.Inventory = append([]Relic{}, s.Inventory...)
	c.LastSafeDoors = append([]int{}, s.LastSafeDoors...)
	return c
}

// Valid reports whether s satisfies the state invariants.
func (s State) Valid() bool {
	if s.Floor < 1 || s.Lives < 0 || s.ConsecutiveSafeDoors < 0 {
		return false
	}
	if s.Achievements.TrapsDodged < 0 || s.Achievements.SixDoorsInRow < 0 || s.Achievements.SixDoorsInRow > 6 {
		return false
	}
	if s.ConsecutiveSafeDoors > len(s.LastSafeDoors) {
		return false
	}
	for _, d := range s.LastSafeDoors {
		if d < 1 || d > maxDoors {
			return false
		}
	}
	for _, r := range s.Inventory {
		if !r.Known() {
			return false
		}
	}
	return true
}
