package tower

// Relic is the name of an item found in a bonus room.
type Relic string

const (
	PhoenixFeather Relic = "Phoenix Feather" // survives one fatal trap
	VisionLens     Relic = "Vision Lens"     // halves the trap chance
	TimeStone      Relic = "Time Stone"      // no effect yet
)

// Relics is the bonus room catalog, in draw order.
var Relics = [...]Relic{PhoenixFeather, VisionLens, TimeStone}

// Known reports whether r is in the catalog.
func (r Relic) Known() bool {
	for _, c := range Relics {
		if c == r {
			return true
		}
	}
	return false
}

// HasRelic reports whether the inventory holds at least one r.
func (s State) HasRelic(r Relic) bool {
	for _, held := range s.Inventory {
		if held == r {
			return true
		}
	}
	return false
}

// consumeRelic removes a single instance of r. It returns false when none is held.
func (s *State) consumeRelic(r Relic) bool {
	for i, held := range s.Inventory {
		if held == r {
			s.Inventory = append(s.Inventory[:i:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

func drawRelic(rng Rng) Relic {
	return Relics[rng.Intn(len(Relics))]
}
