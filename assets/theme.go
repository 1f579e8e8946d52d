package assets

// Emoji constants used by the floor view.
const (
	GlyphDoor        = "🚪"
	GlyphLife        = "💗"
	GlyphLostLife    = "🖤"
	GlyphMemory      = "🧠"
	GlyphMiniBoss    = "👹"
	GlyphTrap        = "💥"
	GlyphAchievement = "🏆"
	GlyphTower       = "🗼"
)

// Band describes a stretch of five floors.
type Band struct {
	Name  string
	Lore  []string // one is picked at random when the player enters the band
	Color [3]int32 // RGB of the band title
}

// Bands holds one entry per five floors. Floors past the last band reuse it.
var Bands = []Band{
	{
		Name:  "The Foyer of Doors",
		Color: [3]int32{200, 200, 200},
		Lore: []string{
			"Three doors, three chances. The tower counts every one.",
			"Scratched into the lintel: 'the walls remember what you forget'.",
		},
	},
	{
		Name:  "The Echo Galleries",
		Color: [3]int32{150, 220, 255},
		Lore: []string{
			"The doors here hum a tune you heard two floors ago.",
			"Every door looks like one you have already opened.",
		},
	},
	{
		Name:  "The Hall of Recollection",
		Color: [3]int32{255, 200, 50},
		Lore: []string{
			"Portraits of climbers line the hall. None of them reached the top.",
			"A plaque reads: 'Memory is the only key the tower accepts'.",
		},
	},
	{
		Name:  "The Summit Stair",
		Color: [3]int32{180, 100, 255},
		Lore: []string{
			"The air thins. The doors multiply. The tower is paying attention.",
			"Somewhere above, a door that has never been opened is waiting.",
		},
	},
}

// BandFor returns the band of floor.
func BandFor(floor int) Band {
	i := (floor - 1) / 5
	if i < 0 {
		i = 0
	}
	if i >= len(Bands) {
		i = len(Bands) - 1
	}
	return Bands[i]
}
